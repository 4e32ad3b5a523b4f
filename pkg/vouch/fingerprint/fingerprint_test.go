package fingerprint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeFile creates a file with the given content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestFileContentAddressing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// Same content under different names and directories.
	a := writeFile(t, dir, "a.txt", "identical content")
	sub := filepath.Join(dir, "deeper")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	b := writeFile(t, sub, "completely-different-name.bin", "identical content")

	recA, err := File(a)
	if err != nil {
		t.Fatalf("File(%s): %v", a, err)
	}
	recB, err := File(b)
	if err != nil {
		t.Fatalf("File(%s): %v", b, err)
	}

	if recA.Hash != recB.Hash {
		t.Errorf("digests differ for identical content: %s vs %s", recA.Hash, recB.Hash)
	}
}

func TestFileDeterminism(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "stable.txt", "unchanging bytes")

	first, err := File(path)
	if err != nil {
		t.Fatalf("File(): %v", err)
	}
	second, err := File(path)
	if err != nil {
		t.Fatalf("File(): %v", err)
	}

	if first != second {
		t.Errorf("re-running on unchanged content: got %+v, want %+v", second, first)
	}
}

func TestFileMetadata(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "meta.txt", "12345")

	mtime := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	rec, err := File(path)
	if err != nil {
		t.Fatalf("File(): %v", err)
	}

	if rec.Size != 5 {
		t.Errorf("Size: got %d, want 5", rec.Size)
	}
	if rec.Modified != mtime.Unix() {
		t.Errorf("Modified: got %d, want %d", rec.Modified, mtime.Unix())
	}
	if len(rec.Hash) != DigestSize*2 {
		t.Errorf("Hash length: got %d, want %d", len(rec.Hash), DigestSize*2)
	}
}

func TestFileEmpty(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := writeFile(t, dir, "empty-a", "")
	b := writeFile(t, dir, "empty-b", "")

	recA, err := File(a)
	if err != nil {
		t.Fatalf("File(): %v", err)
	}
	recB, err := File(b)
	if err != nil {
		t.Fatalf("File(): %v", err)
	}

	if recA.Size != 0 {
		t.Errorf("Size: got %d, want 0", recA.Size)
	}
	// All empty files collide: the digest is non-discriminating.
	if recA.Hash != recB.Hash {
		t.Errorf("empty files have different digests: %s vs %s", recA.Hash, recB.Hash)
	}
}

func TestFileLargerThanBuffer(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// Three chunks plus a remainder exercises the streaming loop.
	content := make([]byte, readBufferSize*3+17)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := filepath.Join(dir, "big.bin")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	rec, err := File(path)
	if err != nil {
		t.Fatalf("File(): %v", err)
	}
	if rec.Size != int64(len(content)) {
		t.Errorf("Size: got %d, want %d", rec.Size, len(content))
	}
	if len(rec.Hash) != DigestSize*2 {
		t.Errorf("Hash length: got %d, want %d", len(rec.Hash), DigestSize*2)
	}
}

func TestFileMissing(t *testing.T) {
	t.Parallel()

	_, err := File(filepath.Join(t.TempDir(), "vanished.txt"))
	if err == nil {
		t.Fatal("File() on missing path: expected error")
	}

	var accessErr *AccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("error type: got %T, want *AccessError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
