package main

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/release-state-reconciler/pkg/config"
	"github.com/release-state-reconciler/pkg/hosting"
	"github.com/release-state-reconciler/pkg/options"
	"github.com/release-state-reconciler/pkg/pacer"
	"github.com/release-state-reconciler/pkg/reconcile"
	"github.com/release-state-reconciler/pkg/reporter"
	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create OPTION...",
		Short: "Wipe all existing tags and releases, then create the declared set",
		RunE:  run,
	}
	cmd.Flags().Bool("dry-run", false, "List the actions without performing them")
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check OPTION...",
		Short: "Verify the declared tags and releases exist, without mutating anything",
		RunE:  run,
	}
	cmd.Flags().String("output", "", "Output format: table | json")
	return cmd
}

// run is shared by both subcommands; the mode is the subcommand's own name.
// All validation happens here, before any remote call is issued.
func run(cmd *cobra.Command, args []string) error {
	log := hclog.FromContext(cmd.Context())

	mode, err := options.ParseCommand(cmd.Name())
	if err != nil {
		return err
	}
	opts, err := options.Parse(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, log)
	if err != nil {
		return err
	}

	r := newReconciler(cfg, log)

	switch mode {
	case options.Create:
		if cfg.Token == "" && !cfg.DryRun {
			return fmt.Errorf("create needs a token; set --github-token or GITHUB_TOKEN")
		}
		if cfg.DryRun {
			log.Info("dry run: no tags or releases will be touched")
		}
		return r.Create(opts)
	case options.Check:
		res, err := r.Check(opts)
		if err != nil {
			return err
		}
		if err := reporter.New(cfg.Output).Report(res); err != nil {
			return err
		}
		if !res.InSync() {
			return reconcile.ErrDrift
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", mode, options.ErrUnsupportedCommand)
	}
}

func newReconciler(cfg *config.Config, log hclog.Logger) *reconcile.Reconciler {
	interval := cfg.PaceInterval()
	if cfg.DryRun {
		// Nothing to pace when no mutating calls are issued.
		interval = 0
	}
	host := hosting.NewTokenHost(cfg.Token)
	p := pacer.New(interval, log.Named("pacer"))
	return reconcile.New(host, p, cfg, log.Named("reconcile"))
}
