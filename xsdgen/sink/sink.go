// Package sink provides output destinations for generated source files.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// OutputSink receives generated file content.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	// WriteFile stores content under a relative, slash-separated path.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes files below a directory.
type FilesystemSink struct {
	// Root is the output directory. It is created on first write.
	Root string

	// Mode is the permission of written files (default 0644).
	Mode os.FileMode

	// Overwrite replaces existing files. When false, writing to an existing
	// path fails.
	Overwrite bool
}

// NewFilesystemSink returns a sink that writes below root, replacing
// existing files.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0o644, Overwrite: true}
}

// WriteFile writes content to path below Root.
//
// The file is written to a temporary sibling and then moved into place, so a
// reader never observes a partially written file.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	tmp, err := writeTemp(dir, content, s.mode())
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if s.Overwrite {
		if err := os.Rename(tmp, target); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("failed to rename temp file: %w", err)
		}
		return nil
	}

	// Link fails if the target exists, unlike Rename.
	err = os.Link(tmp, target)
	_ = os.Remove(tmp)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("file already exists: %q", path)
		}
		return fmt.Errorf("failed to create file: %w", err)
	}
	return nil
}

func (s *FilesystemSink) mode() os.FileMode {
	if s.Mode == 0 {
		return 0o644
	}
	return s.Mode
}

// resolve joins path onto Root and rejects results outside of it.
func (s *FilesystemSink) resolve(path string) (string, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root directory: %w", err)
	}
	full, err := filepath.Abs(filepath.Join(root, filepath.FromSlash(path)))
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root directory: %q", path)
	}
	return full, nil
}

// writeTemp writes content to a new temporary file in dir and returns its
// name. Leftovers from a failed run match .xsdgen-*.tmp.
func writeTemp(dir string, content []byte, mode os.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, ".xsdgen-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := f.Name()

	_, werr := f.Write(content)
	cerr := f.Close()
	switch {
	case werr != nil:
		err = fmt.Errorf("failed to write temp file: %w", werr)
	case cerr != nil:
		err = fmt.Errorf("failed to close temp file: %w", cerr)
	default:
		if merr := os.Chmod(name, mode); merr != nil {
			err = fmt.Errorf("failed to set file mode: %w", merr)
		}
	}
	if err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}

// MemorySink keeps written files in memory. It is used by tests and by
// callers that post-process output before writing it themselves.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content under path.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = append([]byte(nil), content...)
	return nil
}

// Get returns a copy of the file at path, or nil.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return nil
	}
	return append([]byte(nil), content...)
}

// Paths returns the stored paths in sorted order.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Reset removes all stored files.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string][]byte)
}

// DiscardSink validates and counts writes without storing anything.
// The check command renders through it.
type DiscardSink struct {
	mu    sync.Mutex
	count int
	bytes int64
}

// WriteFile validates path and drops content.
func (s *DiscardSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	s.bytes += int64(len(content))
	return nil
}

// Stats returns the number of files and bytes discarded so far.
func (s *DiscardSink) Stats() (files int, bytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, s.bytes
}

// ValidatePath checks that path is relative, slash-separated, clean, and
// stays within the sink root.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") || hasDriveLetter(path) {
		return errors.New("absolute paths not allowed")
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if strings.Contains(path, `\`) {
		return errors.New("path must use / as separator")
	}
	if cleaned := filepath.ToSlash(filepath.Clean(path)); cleaned != path {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, path)
	}
	return nil
}

func hasDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
