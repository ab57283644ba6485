package accesslog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// Sink persists access log entries.
type Sink interface {
	Append(e Entry) error
	Read() ([]byte, error)
}

// FileSink appends entries to a plaintext file. Appends are serialized and
// each line is written with a single write on a file opened with O_APPEND,
// so lines never interleave.
type FileSink struct {
	path string
	mu   sync.Mutex
}

var _ Sink = (*FileSink)(nil)

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open access log %s: %w", s.path, err)
	}

	if _, err := f.Write([]byte(e.String())); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to access log %s: %w", s.path, err)
	}

	return f.Close()
}

// Read returns the file content. A file that does not exist yet reads as empty.
func (s *FileSink) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read access log %s: %w", s.path, err)
	}
	return content, nil
}

// Size returns the file size in bytes, zero when the file does not exist yet.
func (s *FileSink) Size() (int64, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
