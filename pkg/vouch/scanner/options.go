package scanner

import "runtime"

// Progress is a snapshot of scan progress for reporting. Counters include
// failed files: every dispatched path is counted exactly once.
type Progress struct {
	// Total is the number of paths the scan was given.
	Total int64

	// Processed is the number of paths fingerprinted so far, successful
	// or not.
	Processed int64

	// Failed is the number of paths whose fingerprint failed.
	Failed int64

	// BytesHashed is the total size of successfully fingerprinted files.
	BytesHashed int64
}

// Options configures the scanner behavior.
type Options struct {
	// Workers is the number of concurrent fingerprint workers.
	// Zero or negative selects one worker per CPU.
	Workers int

	// OnProgress is called periodically with scan progress updates.
	// It must be safe to call from multiple goroutines.
	OnProgress func(Progress)
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
	}
}

// Validate applies defaults for invalid values.
func (o *Options) Validate() error {
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
	return nil
}
