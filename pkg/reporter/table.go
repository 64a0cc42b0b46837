package reporter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/release-state-reconciler/pkg/reconcile"
)

type TableReporter struct {
	Out io.Writer
}

func (r *TableReporter) Report(res reconcile.Result) error {
	if res.InSync() {
		_, err := fmt.Fprintf(r.Out, "All %d declared tags and releases are present.\n", res.Checked)
		return err
	}

	fmt.Fprintf(r.Out, "%d of %d declared entries missing:\n\n", len(res.Missing), res.Checked)

	w := tabwriter.NewWriter(r.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tTAG\tRELEASE\tDRAFT")
	fmt.Fprintln(w, "----\t---\t-------\t-----")

	for _, m := range res.Missing {
		name := m.Name
		if m.Kind == "tag" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", m.Kind, m.Tag, name, m.Draft)
	}
	return w.Flush()
}
