package commands

import (
	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the library and its examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentBuild, Flags: flags.toDomain()})
		},
	}

	flags.bindRelease(cmd)
	cmd.Flags().StringVar(&flags.arch, "arch", "", "Cross-compilation architecture (arm32, aarch64)")
	flags.bindFeatures(cmd)
	flags.bindNoExamples(cmd)

	return cmd
}
