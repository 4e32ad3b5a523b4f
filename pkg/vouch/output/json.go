package output

import (
	"bytes"
	"encoding/json"

	"github.com/jamesainslie/vouch/pkg/vouch/types"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Root     string          `json:"root"`
	Snapshot string          `json:"snapshot"`
	Verdicts []types.Verdict `json:"verdicts"`
	Summary  jsonSummary     `json:"summary"`
	Stats    jsonStats       `json:"stats"`
	Updated  bool            `json:"updated"`
}

// jsonSummary represents the verdict counts in JSON output.
type jsonSummary struct {
	Matched     int  `json:"matched"`
	Moved       int  `json:"moved"`
	Mismatched  int  `json:"mismatched"`
	Skipped     int  `json:"skipped"`
	Extra       int  `json:"extra"`
	HasMismatch bool `json:"has_mismatch"`
}

// jsonStats represents scan statistics in JSON output.
type jsonStats struct {
	FilesScanned int64  `json:"files_scanned"`
	Failed       int64  `json:"failed"`
	BytesHashed  int64  `json:"bytes_hashed"`
	Duration     string `json:"duration"`
}

// JSONFormatter formats output as a single indented JSON object.
// Quiet mode has no effect; JSON consumers get the complete result.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(r))
}

// buildJSONOutput converts a Result to the JSON output structure.
func buildJSONOutput(r *Result) jsonOutput {
	verdicts := r.Verdicts
	if verdicts == nil {
		verdicts = []types.Verdict{}
	}

	return jsonOutput{
		Root:     r.Root,
		Snapshot: r.SnapshotPath,
		Verdicts: verdicts,
		Summary: jsonSummary{
			Matched:     r.Summary.Matched,
			Moved:       r.Summary.Moved,
			Mismatched:  r.Summary.Mismatched,
			Skipped:     r.Summary.Skipped,
			Extra:       r.Summary.Extra,
			HasMismatch: r.Summary.HasMismatch(),
		},
		Stats: jsonStats{
			FilesScanned: r.Stats.FilesScanned,
			Failed:       r.Stats.Failed,
			BytesHashed:  r.Stats.BytesHashed,
			Duration:     r.Stats.Duration.String(),
		},
		Updated: r.Updated,
	}
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
