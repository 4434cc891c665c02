package commands

import (
	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func (c *CLI) newTestCmd() *cobra.Command {
	var (
		flags buildFlags
		miri  bool
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the test suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentTest, Flags: flags.toDomain(), Miri: miri})
		},
	}

	flags.bindRelease(cmd)
	flags.bindFeatures(cmd)
	cmd.Flags().BoolVar(&miri, "miri", false, "Run the tests under miri")
	cmd.Flags().StringVar(&flags.channel, "channel", "", "Toolchain channel for miri (default \"nightly\")")

	return cmd
}
