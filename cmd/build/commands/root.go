// Package commands implements the CLI commands for the build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinolab/autd3-link-soem/internal/app"
	"github.com/shinolab/autd3-link-soem/internal/build"
	"github.com/shinolab/autd3-link-soem/internal/core/domain"
)

// CLI represents the command line interface for the build tool.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	onJSON   func(enabled bool)
	rootDir  string
	dryRun   bool
	jsonLogs bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, req app.Request) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONLogs registers fn to be told whether --json was given before any
// command runs.
func WithJSONLogs(fn func(enabled bool)) Option {
	return func(c *CLI) {
		c.onJSON = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "build",
		Short:         "Build orchestration for autd3-link-soem",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.rootDir, "dir", "C", ".", "Project root directory")
	pf.BoolVar(&c.dryRun, "dry-run", false, "Print the commands instead of running them")
	pf.BoolVar(&c.jsonLogs, "json", false, "Write logs as JSON")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.onJSON != nil {
			c.onJSON(c.jsonLogs)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newLintCmd())
	rootCmd.AddCommand(c.newDocCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newClearCmd())
	rootCmd.AddCommand(c.newCovCmd())
	rootCmd.AddCommand(c.newUtilCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// run dispatches intent with the persistent flags applied.
func (c *CLI) run(cmd *cobra.Command, req app.Request) error {
	req.Root = c.rootDir
	req.DryRun = c.dryRun
	return c.app.Run(cmd.Context(), req)
}

// buildFlags are the toolchain flags shared by several commands.
type buildFlags struct {
	release    bool
	arch       string
	features   string
	channel    string
	noExamples bool
}

func (f *buildFlags) toDomain() domain.Flags {
	return domain.Flags{
		Arch:       f.arch,
		Release:    f.release,
		Features:   f.features,
		Channel:    f.channel,
		NoExamples: f.noExamples,
	}
}

func (f *buildFlags) bindRelease(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.release, "release", false, "Build in release mode")
}

func (f *buildFlags) bindFeatures(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.features, "features", "", "Additional features, space separated")
}

func (f *buildFlags) bindNoExamples(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noExamples, "no-examples", false, "Skip examples")
}
