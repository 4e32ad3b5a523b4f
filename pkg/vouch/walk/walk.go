// Package walk lists the files under a directory tree for fingerprinting.
// It wraps fastwalk for parallel traversal and supports skipping subtrees
// whose directory name matches an exclusion set.
package walk

import (
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/jamesainslie/vouch/pkg/vouch/logging"
)

// Options configures a directory walk.
type Options struct {
	// Root is the directory to traverse.
	Root string

	// SkipDirs contains directory base names to exclude. A directory is
	// skipped, with its whole subtree, when its name matches exactly.
	// Matching is by name, not by pattern.
	SkipDirs []string
}

// Files returns the regular files under opts.Root, sorted for a stable
// listing. Symlinks are not followed. Unreadable directories are logged
// and skipped; they never abort the traversal.
func Files(opts Options) ([]string, error) {
	if _, err := os.Stat(opts.Root); err != nil {
		return nil, err
	}

	skip := make(map[string]struct{}, len(opts.SkipDirs))
	for _, name := range opts.SkipDirs {
		skip[name] = struct{}{}
	}

	logger := logging.Get("walk")

	var (
		mu    sync.Mutex
		files []string
	)

	conf := fastwalk.Config{
		Follow: false,
	}

	err := fastwalk.Walk(&conf, opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			if _, skipped := skip[d.Name()]; skipped && path != opts.Root {
				return fastwalk.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		mu.Lock()
		files = append(files, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// fastwalk visits each file exactly once, but the concurrent append
	// order is arbitrary.
	sort.Strings(files)
	return files, nil
}
