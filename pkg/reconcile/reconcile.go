// Package reconcile drives the remote tag and release state of a repository
// toward a declared desired set, either destructively (create) or by
// verification only (check).
package reconcile

import (
	"errors"

	"github.com/hashicorp/go-hclog"
	"github.com/release-state-reconciler/pkg/config"
	"github.com/release-state-reconciler/pkg/hosting"
	"github.com/release-state-reconciler/pkg/pacer"
)

// ErrDrift marks a completed check whose expectations were not all met. It is
// a declared-state mismatch, not a malfunction; the caller turns it into a
// non-zero exit status after the mismatches have been reported.
var ErrDrift = errors.New("remote state does not match declared state")

type Reconciler struct {
	host  hosting.RepoHost
	pacer *pacer.Pacer
	cfg   *config.Config
	log   hclog.Logger
}

func New(host hosting.RepoHost, p *pacer.Pacer, cfg *config.Config, log hclog.Logger) *Reconciler {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Reconciler{
		host:  host,
		pacer: p,
		cfg:   cfg,
		log:   log,
	}
}
