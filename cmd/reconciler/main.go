package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/release-state-reconciler/pkg/config"
	"github.com/release-state-reconciler/pkg/reconcile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(reportError(newRootCmd().Execute()))
}

// reportError maps the command outcome to an exit status. Drift has already
// been reported as data by the check command; everything else is a
// malfunction worth printing.
func reportError(err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, reconcile.ErrDrift) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return 1
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reconciler",
		Short: "Reconcile a repository's tags and releases against a declared set",
		Long: `Drives the tag and release state of a GitHub repository toward a declared
desired set. The create command wipes every existing tag and release and
recreates the declared set; the check command verifies the declared set
exists and reports what is missing.

Options use a comma-separated key:value grammar:

  tag:<name>    declare a tag
  rel:<name>    declare a release
  dft:true      mark a declared release as a draft

Examples:

  reconciler create "rel:Beta,tag:v1.2.0,dft:true" "tag:v1.2.0-alpha"
  reconciler check "tag:v1.2.0-alpha"`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(hclog.WithContext(cmd.Context(), newLogger(cmd.Flags())))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("repo", os.Getenv("GITHUB_REPOSITORY"), "GitHub repo (owner/name) to reconcile")
	pf.String("github-token", os.Getenv("GITHUB_TOKEN"), "GitHub token for API access")
	pf.String("branch", "", "Branch whose tip anchors newly created tags (default from config, then main)")
	pf.Int("pace", 2500, "Pause after each API call, in milliseconds")
	pf.String("config", ".release-reconciler.yml", "Path to config file")
	pf.BoolP("verbose", "v", false, "Enable debug output")
	pf.BoolP("quiet", "q", false, "Suppress non-error output")

	rootCmd.AddCommand(newCreateCmd(), newCheckCmd(), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", version, commit)
		},
	}
}

func newLogger(flags *pflag.FlagSet) hclog.Logger {
	level := hclog.Info
	if v, _ := flags.GetBool("verbose"); v {
		level = hclog.Debug
	}
	if q, _ := flags.GetBool("quiet"); q {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "reconciler",
		Level:  level,
		Output: os.Stderr,
	})
}

func loadConfig(cmd *cobra.Command, log hclog.Logger) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		log.Debug("no config file loaded, using defaults", "path", path, "error", err)
		cfg = config.Default()
	}
	cfg = config.MergeFlags(cfg, cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
