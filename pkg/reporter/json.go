package reporter

import (
	"encoding/json"
	"io"

	"github.com/release-state-reconciler/pkg/reconcile"
)

type JSONReporter struct {
	Out io.Writer
}

func (r *JSONReporter) Report(res reconcile.Result) error {
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")

	type output struct {
		InSync  bool                    `json:"in_sync"`
		Checked int                     `json:"checked"`
		Missing []reconcile.Expectation `json:"missing,omitempty"`
	}

	return enc.Encode(output{
		InSync:  res.InSync(),
		Checked: res.Checked,
		Missing: res.Missing,
	})
}
