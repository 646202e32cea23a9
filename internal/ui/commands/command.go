package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"riderdir/internal/api"
	"riderdir/internal/domain"
	"riderdir/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx    context.Context
	State  *state.AppState
	Client api.RiderClient
}

// RidersFetchedMsg carries the result of a list or search request.
// Seq is the tag the request was issued with.
type RidersFetchedMsg struct {
	Seq    uint64
	Query  domain.Query
	Riders []domain.Rider
	Err    error
}

// RiderDeletedMsg carries the result of a delete request
type RiderDeletedMsg struct {
	ID  string
	Err error
}

// ListCommand fetches one page of the directory
type ListCommand struct {
	ctx  *CommandContext
	page int
	name string
}

// NewListCommand creates a new list command
func NewListCommand(ctx *CommandContext, page int, name string) *ListCommand {
	return &ListCommand{
		ctx:  ctx,
		page: page,
		name: name,
	}
}

// Execute tags the request and returns the command performing it
func (c *ListCommand) Execute() tea.Cmd {
	q := domain.Query{Kind: domain.FetchList, Page: c.page, Limit: domain.PageSize, Name: c.name}
	seq := c.ctx.State.BeginFetch(q)
	reqCtx, client := c.ctx.Ctx, c.ctx.Client

	return func() tea.Msg {
		riders, err := client.ListRiders(reqCtx, q.Page, q.Limit, q.Name)
		return RidersFetchedMsg{Seq: seq, Query: q, Riders: riders, Err: err}
	}
}

// SearchCommand fetches riders by name without pagination
type SearchCommand struct {
	ctx  *CommandContext
	name string
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, name string) *SearchCommand {
	return &SearchCommand{
		ctx:  ctx,
		name: name,
	}
}

// Execute tags the request and returns the command performing it
func (c *SearchCommand) Execute() tea.Cmd {
	q := domain.Query{Kind: domain.FetchSearch, Name: c.name}
	seq := c.ctx.State.BeginFetch(q)
	reqCtx, client := c.ctx.Ctx, c.ctx.Client

	return func() tea.Msg {
		riders, err := client.SearchRiders(reqCtx, q.Name)
		return RidersFetchedMsg{Seq: seq, Query: q, Riders: riders, Err: err}
	}
}

// DeleteCommand deletes a rider
type DeleteCommand struct {
	ctx *CommandContext
	id  string
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext, id string) *DeleteCommand {
	return &DeleteCommand{
		ctx: ctx,
		id:  id,
	}
}

// Execute marks the delete in flight and returns the command performing it
func (c *DeleteCommand) Execute() tea.Cmd {
	c.ctx.State.BeginDelete(c.id)
	id, reqCtx, client := c.id, c.ctx.Ctx, c.ctx.Client

	return func() tea.Msg {
		return RiderDeletedMsg{ID: id, Err: client.DeleteRider(reqCtx, id)}
	}
}
