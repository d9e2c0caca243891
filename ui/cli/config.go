// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/contabancaria/contabancaria/internal/config"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Writes the configuration currently in effect (defaults, config
file, CONTABANCARIA_* environment variables and flags) to the user
config file, or to the system one with --system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.WriteConfigFile(&a.config, system)
			if err != nil {
				return fmt.Errorf("could not write config file: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return err
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "write the system wide config file")

	cmd.AddCommand(initCmd)
	return cmd
}
