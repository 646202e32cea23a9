package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"riderdir/internal/domain"
)

// Pager shows long content in ov while the Bubble Tea program is suspended
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowText pages plain or ANSI-styled text
func (p *Pager) ShowText(content string) error {
	return p.run(strings.NewReader(content))
}

// ShowRiders pages the given riders as indented JSON, in the wire format
func (p *Pager) ShowRiders(riders []domain.Rider) error {
	content, err := RidersJSON(riders)
	if err != nil {
		return err
	}
	return p.ShowText(content)
}

// RidersJSON renders riders the way the API returns them
func RidersJSON(riders []domain.Rider) (string, error) {
	if riders == nil {
		riders = []domain.Rider{}
	}
	data, err := json.MarshalIndent(riders, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode riders: %w", err)
	}
	return string(data) + "\n", nil
}

// run hands the terminal to ov and restores it when ov exits
func (p *Pager) run(r io.Reader) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return root.Run()
}
