// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/contabancaria/contabancaria/ui/tui/models/views/accountform"
	"github.com/contabancaria/contabancaria/ui/tui/models/views/root"
)

type Options struct {
	AltScreen   bool
	CopySummary bool

	// Input and Output default to the process terminal.
	Input  io.Reader
	Output io.Writer
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// reported as an error.
func Run(ctx context.Context, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	model := root.New(accountform.Options{CopySummary: opts.CopySummary})
	_, err := tea.NewProgram(model, programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
