// Package fingerprint computes content fingerprints for single files.
// A fingerprint pairs a streaming BLAKE3 digest of the file bytes with the
// modification time and size taken from filesystem metadata.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/jamesainslie/vouch/pkg/vouch/types"
	"lukechampine.com/blake3"
)

// DigestSize is the digest length in bytes. The hex form is twice this.
const DigestSize = 32

// readBufferSize is the chunk size for streaming file content through the
// hasher. Content is never loaded into memory whole.
const readBufferSize = 64 * 1024

// AccessError reports a file that could not be fingerprinted: unreadable,
// permission denied, or vanished between listing and read. The scanner
// recovers from these by dropping the file from results.
type AccessError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return fmt.Sprintf("fingerprint %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// File computes the fingerprint record for the file at path.
//
// Metadata (mtime, size) is captured once, before the content read. A file
// whose content changes between the metadata read and the hash read yields
// a record mixing the two states; this race is a documented limitation and
// is not guarded against.
func File(path string) (types.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.Record{}, &AccessError{Path: path, Err: err}
	}

	sum, err := hashContent(path)
	if err != nil {
		return types.Record{}, &AccessError{Path: path, Err: err}
	}

	return types.Record{
		Hash:     sum,
		Modified: info.ModTime().Unix(),
		Size:     info.Size(),
	}, nil
}

// hashContent streams the file through a BLAKE3 hasher in fixed-size
// chunks and returns the hex digest.
func hashContent(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := blake3.New(DigestSize, nil)
	buf := make([]byte, readBufferSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
