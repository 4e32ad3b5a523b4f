package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Root     string        `yaml:"root"`
	Snapshot string        `yaml:"snapshot"`
	Verdicts []yamlVerdict `yaml:"verdicts"`
	Summary  yamlSummary   `yaml:"summary"`
	Stats    yamlStats     `yaml:"stats"`
	Updated  bool          `yaml:"updated"`
}

// yamlVerdict represents one classification in YAML output.
type yamlVerdict struct {
	Path       string   `yaml:"path"`
	Kind       string   `yaml:"kind"`
	Expected   string   `yaml:"expected,omitempty"`
	Found      string   `yaml:"found,omitempty"`
	PriorPaths []string `yaml:"prior_paths,omitempty"`
}

// yamlSummary represents the verdict counts in YAML output.
type yamlSummary struct {
	Matched     int  `yaml:"matched"`
	Moved       int  `yaml:"moved"`
	Mismatched  int  `yaml:"mismatched"`
	Skipped     int  `yaml:"skipped"`
	Extra       int  `yaml:"extra"`
	HasMismatch bool `yaml:"has_mismatch"`
}

// yamlStats represents scan statistics in YAML output.
type yamlStats struct {
	FilesScanned int64  `yaml:"files_scanned"`
	Failed       int64  `yaml:"failed"`
	BytesHashed  int64  `yaml:"bytes_hashed"`
	Duration     string `yaml:"duration"`
}

// YAMLFormatter formats output as YAML.
// It produces the same structure as JSONFormatter but in YAML format.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	verdicts := make([]yamlVerdict, len(r.Verdicts))
	for i, v := range r.Verdicts {
		verdicts[i] = yamlVerdict{
			Path:       v.Path,
			Kind:       v.Kind.String(),
			Expected:   v.Expected,
			Found:      v.Found,
			PriorPaths: v.PriorPaths,
		}
	}

	output := yamlOutput{
		Root:     r.Root,
		Snapshot: r.SnapshotPath,
		Verdicts: verdicts,
		Summary: yamlSummary{
			Matched:     r.Summary.Matched,
			Moved:       r.Summary.Moved,
			Mismatched:  r.Summary.Mismatched,
			Skipped:     r.Summary.Skipped,
			Extra:       r.Summary.Extra,
			HasMismatch: r.Summary.HasMismatch(),
		},
		Stats: yamlStats{
			FilesScanned: r.Stats.FilesScanned,
			Failed:       r.Stats.Failed,
			BytesHashed:  r.Stats.BytesHashed,
			Duration:     r.Stats.Duration.String(),
		},
		Updated: r.Updated,
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
