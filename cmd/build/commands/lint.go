package commands

import (
	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func (c *CLI) newLintCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Run clippy with warnings denied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentLint, Flags: flags.toDomain()})
		},
	}

	flags.bindRelease(cmd)
	flags.bindFeatures(cmd)
	flags.bindNoExamples(cmd)

	return cmd
}
