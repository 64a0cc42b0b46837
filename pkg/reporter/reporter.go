// Package reporter renders check outcomes for the operator.
package reporter

import (
	"io"
	"os"

	"github.com/release-state-reconciler/pkg/reconcile"
)

type Reporter interface {
	Report(res reconcile.Result) error
}

func New(format string) Reporter {
	return NewWriter(format, os.Stdout)
}

func NewWriter(format string, out io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{Out: out}
	default:
		return &TableReporter{Out: out}
	}
}
