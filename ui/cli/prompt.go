// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"

	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/ui/prompt"
	"github.com/spf13/cobra"
)

func newPromptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill the account form with line-by-line questions",
		Long: `Asks for each field of the account form in turn, checking every
answer before moving on, and prints the account summary at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.isTerminal() {
				return errors.New(i18n.T("cli.error_no_terminal"))
			}

			_, err := prompt.Run(cmd.Context(), a.newDriver(cmd.OutOrStdout()))
			if errors.Is(err, prompt.ErrAborted) {
				cmd.PrintErrln(i18n.T("prompt.aborted"))
				return nil
			}
			return err
		},
	}
}
