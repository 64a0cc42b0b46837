// Package pacer spaces out remote calls with a fixed pause, keeping the tool
// under the hosting platform's abuse limits without any adaptive policy.
package pacer

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultInterval is the pause applied after every successful remote call.
const DefaultInterval = 2500 * time.Millisecond

// Pacer wraps remote calls and enforces the post-call pause. It is not safe
// for concurrent use and does not need to be: reconciliation is strictly
// sequential.
type Pacer struct {
	interval time.Duration
	sleep    func(time.Duration)
	log      hclog.Logger
}

func New(interval time.Duration, log hclog.Logger) *Pacer {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Pacer{
		interval: interval,
		sleep:    time.Sleep,
		log:      log,
	}
}

// Do runs fn and, if it succeeds, pauses for the configured interval before
// returning. Errors propagate immediately without the pause; the pause paces
// the next call, it does not recover this one. An interval of zero disables
// the pause.
func (p *Pacer) Do(name string, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	if p.interval > 0 {
		p.log.Debug("pacing before next call", "after", name, "interval", p.interval)
		p.sleep(p.interval)
	}
	return nil
}
