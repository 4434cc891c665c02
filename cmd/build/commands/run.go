package commands

import (
	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:       "run TARGET",
		Short:     "Run an example",
		Args:      cobra.ExactArgs(1),
		ValidArgs: domain.ExampleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentRun, Flags: flags.toDomain(), Example: args[0]})
		},
	}

	flags.bindRelease(cmd)
	flags.bindFeatures(cmd)

	return cmd
}
