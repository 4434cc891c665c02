package commands

import (
	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func (c *CLI) newDocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doc",
		Short: "Build the documentation on the nightly channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentDoc})
		},
	}
}
