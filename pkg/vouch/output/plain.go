package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// PlainFormatter formats output as a simple tab-separated table.
// It produces plain text output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	for i := range r.Verdicts {
		v := &r.Verdicts[i]
		if r.Quiet && v.Kind != types.Mismatched {
			continue
		}
		if v.Kind == types.Matched {
			continue
		}

		detail := ""
		switch v.Kind {
		case types.Mismatched:
			detail = fmt.Sprintf("expected=%s found=%s", v.Expected, v.Found)
		case types.Moved:
			if len(v.PriorPaths) > 0 {
				detail = "previously=" + strings.Join(v.PriorPaths, ",")
			}
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", strings.ToUpper(v.Kind.String()), v.Path, detail); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if !r.Quiet {
		fmt.Fprintf(w, "matched=%d moved=%d mismatched=%d skipped=%d extra=%d\n",
			r.Summary.Matched, r.Summary.Moved, r.Summary.Mismatched,
			r.Summary.Skipped, r.Summary.Extra)
	}

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
