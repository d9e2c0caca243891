// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/contabancaria/contabancaria/buildvars"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/contabancaria/contabancaria"

// resolveBuildVersion computes the best-available version and commit for the
// running binary. Link-time values win; otherwise the module version and VCS
// revision from the build info are used. A nil info reads the runtime's.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut string) {
	versionOut = buildvars.VersionOrDefault("dev")
	commitOut = buildvars.Commit

	if info == nil {
		var ok bool
		if info, ok = debug.ReadBuildInfo(); !ok {
			return versionOut, commitOut
		}
	}

	if versionOut == "dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			versionOut = v
		} else {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					versionOut = dep.Version
					break
				}
			}
		}
	}

	if commitOut == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				commitOut = s.Value
				if len(commitOut) > 7 {
					commitOut = commitOut[:7]
				}
			}
		}
	}

	return versionOut, commitOut
}

func versionString() string {
	v, c := resolveBuildVersion(nil)
	if c != "" {
		return v + " (" + c + ")"
	}
	return v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "contabancaria %s\n", versionString())
			return err
		},
	}
}
