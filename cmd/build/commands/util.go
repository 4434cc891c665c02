package commands

import (
	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func (c *CLI) newUtilCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "util",
		Short: "Maintenance utilities",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "upver VERSION",
		Short: "Set the crate version and the autd3 dependency versions",
		Long: "Set the crate version and the autd3 dependency versions in Cargo.toml.\n\n" +
			"VERSION must be strict semver: MAJOR.MINOR.PATCH with an optional\n" +
			"pre-release or build suffix and no leading \"v\" (e.g. 1.2.3, 1.2.3-rc.1).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentVersionBump, Version: args[0]})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "glob_unsafe",
		Short: "List source files containing unsafe code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentUnsafeAudit})
		},
	})

	return cmd
}
