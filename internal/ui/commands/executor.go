package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"riderdir/internal/api"
	"riderdir/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. Remote calls derive from ctx.
func NewExecutor(ctx context.Context, state *state.AppState, client api.RiderClient) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Executor{
		ctx: &CommandContext{
			Ctx:    ctx,
			State:  state,
			Client: client,
		},
	}
}

// ExecuteList creates and executes a list command
func (e *Executor) ExecuteList(page int, name string) tea.Cmd {
	cmd := NewListCommand(e.ctx, page, name)
	return cmd.Execute()
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(name string) tea.Cmd {
	cmd := NewSearchCommand(e.ctx, name)
	return cmd.Execute()
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(id string) tea.Cmd {
	cmd := NewDeleteCommand(e.ctx, id)
	return cmd.Execute()
}
