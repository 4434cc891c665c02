package commands

import (
	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

func (c *CLI) newCovCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "cov",
		Short: "Generate a coverage report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, app.Request{Intent: domain.IntentCoverage, Format: format})
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Report format: lcov, html or markdown (default \"lcov\")")

	return cmd
}
