package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// PrettyFormatter formats output with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	if !r.Quiet {
		w.WriteString(f.formatHeader(r))
		w.WriteString("\n")
	}

	for i := range r.Verdicts {
		line := f.formatVerdict(&r.Verdicts[i], r.Quiet)
		if line != "" {
			w.WriteString(line)
		}
	}

	if !r.Quiet {
		w.WriteString(f.formatSummary(r))
		w.WriteString("\n")
	}

	return nil
}

// formatHeader builds the header box with run metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("%s %s",
		LabelStyle.Render("Root:"),
		ValueStyle.Render(r.Root)))
	lines = append(lines, fmt.Sprintf("%s %s",
		LabelStyle.Render("Snapshot:"),
		ValueStyle.Render(r.SnapshotPath)))
	lines = append(lines, fmt.Sprintf("%s %s",
		LabelStyle.Render("Scanned:"),
		ValueStyle.Render(fmt.Sprintf("%d files (%s) in %s",
			r.Stats.FilesScanned,
			types.FormatSize(r.Stats.BytesHashed),
			r.Stats.Duration.Round(timeRounding)))))

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatVerdict renders one verdict line. In quiet mode only mismatches
// render; the verification failure must never be silent.
func (f *PrettyFormatter) formatVerdict(v *types.Verdict, quiet bool) string {
	switch v.Kind {
	case types.Mismatched:
		return fmt.Sprintf("%s %s\n  %s %s\n  %s %s\n",
			MismatchStyle.Render("MISMATCH"),
			PathStyle.Render(v.Path),
			LabelStyle.Render("expected:"),
			MutedStyle.Render(v.Expected),
			LabelStyle.Render("found:   "),
			MutedStyle.Render(v.Found))
	case types.Moved:
		if quiet {
			return ""
		}
		if len(v.PriorPaths) == 0 {
			return fmt.Sprintf("%s %s %s\n",
				MovedStyle.Render("MOVED"),
				PathStyle.Render(v.Path),
				MutedStyle.Render("(multiple prior locations)"))
		}
		return fmt.Sprintf("%s %s\n  %s %s\n",
			MovedStyle.Render("MOVED"),
			PathStyle.Render(v.Path),
			LabelStyle.Render("previously:"),
			MutedStyle.Render(strings.Join(v.PriorPaths, ", ")))
	case types.Skipped:
		if quiet {
			return ""
		}
		return fmt.Sprintf("%s %s %s\n",
			SkippedStyle.Render("SKIPPED"),
			PathStyle.Render(v.Path),
			MutedStyle.Render("(modified time differs, new baseline)"))
	case types.Extra:
		if quiet {
			return ""
		}
		return fmt.Sprintf("%s %s\n",
			ExtraStyle.Render("EXTRA"),
			PathStyle.Render(v.Path))
	default:
		// Matched files are not listed individually; the summary carries
		// the count.
		return ""
	}
}

// formatSummary builds the summary box.
func (f *PrettyFormatter) formatSummary(r *Result) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("%s %d", MatchedStyle.Render("Matched:"), r.Summary.Matched))
	lines = append(lines, fmt.Sprintf("%s %d", MovedStyle.Render("Moved:"), r.Summary.Moved))
	lines = append(lines, fmt.Sprintf("%s %d", MismatchStyle.Render("Mismatched:"), r.Summary.Mismatched))
	lines = append(lines, fmt.Sprintf("%s %d", SkippedStyle.Render("Skipped:"), r.Summary.Skipped))
	lines = append(lines, fmt.Sprintf("%s %d", ExtraStyle.Render("Extra:"), r.Summary.Extra))

	if r.Updated {
		lines = append(lines, MutedStyle.Render(fmt.Sprintf("Snapshot updated: %s", r.SnapshotPath)))
	}

	return SummaryBox.Render(strings.Join(lines, "\n"))
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
