package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"remappings/internal/config"
)

// NewRootCmd builds the forge command tree with the remappings subcommand.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "forge",
		Short:         "Build, test and inspect Solidity projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newRemappingsCmd())
	return rootCmd
}

func newRemappingsCmd() *cobra.Command {
	cfg := &config.Config{}

	remappingsCmd := &cobra.Command{
		Use:   "remappings",
		Short: "Get the automatically inferred remappings for the project",
		Long: `Print the import remappings of the project, merged from foundry.toml,
the FOUNDRY_REMAPPINGS environment variable, remappings.txt and the libraries
installed under the configured lib directories.

With --pretty, remappings are grouped by context under one header per group.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRemappings(cmd, cfg)
		},
	}

	flags := remappingsCmd.Flags()
	flags.StringVar(&cfg.Root, "root", "", "The project's root path (default: git repository root, else the current directory)")
	flags.BoolVar(&cfg.Pretty, "pretty", false, "Pretty-print the remappings, grouping each of them by context")
	flags.StringVar(&cfg.Profile, "profile", "", "Configuration profile (default: $FOUNDRY_PROFILE or \"default\")")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVar(&cfg.Debug, "debug", false, "Debug mode")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Quiet mode")

	remappingsCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	remappingsCmd.MarkFlagsMutuallyExclusive("debug", "quiet")

	return remappingsCmd
}

func runRemappings(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return executeRemappings(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Execute runs the command tree and turns any failure into one diagnostic
// line on stderr and exit status 1.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	prefix := color.New(color.FgHiRed, color.Bold).Sprint("Error:")
	fmt.Fprintf(w, "%s %s\n", prefix, err.Error())
}
