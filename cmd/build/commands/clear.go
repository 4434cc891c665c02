package commands

import (
	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func (c *CLI) newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove build artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentClear})
		},
	}
}
