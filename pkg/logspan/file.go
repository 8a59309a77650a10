package logspan

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"
)

const defaultBufSize = 64 * 1024 // 64KB

// FileOption configures a FileSink.
type FileOption func(*FileSink)

// WithMaxSize sets the file size (bytes) at which rotation triggers.
// 0 (default) disables rotation.
func WithMaxSize(bytes int64) FileOption {
	return func(s *FileSink) { s.maxSize = bytes }
}

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) FileOption {
	return func(s *FileSink) { s.bufSize = bytes }
}

// FileSink appends lines to a file with buffered I/O and optional size-based
// rotation. It is mutex-guarded, so it may be shared across goroutines.
//
// Log cannot return an error; the first write or rotation failure is kept and
// reported by Close, which also flushes the buffer. Callers who care about
// durability must call Close (or at least check it at shutdown).
type FileSink struct {
	mu      sync.Mutex
	w       *bufio.Writer
	f       *os.File
	path    string
	maxSize int64 // 0 = no rotation
	written int64
	bufSize int
	err     error // first deferred failure, surfaced by Close
}

// NewFileSink opens (or creates) path for appending and returns a sink that
// writes one line per Log call.
func NewFileSink(path string, opts ...FileOption) (*FileSink, error) {
	s := &FileSink{
		path:    path,
		bufSize: defaultBufSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.openFile(); err != nil {
		return nil, err
	}
	return s, nil
}

// Log appends line plus a newline, rotating first when the write would push
// the file past the configured maximum size.
func (s *FileSink) Log(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := make([]byte, 0, len(line)+1)
	data = append(data, line...)
	data = append(data, '\n')

	if s.maxSize > 0 && s.written+int64(len(data)) > s.maxSize {
		if err := s.rotate(); err != nil {
			s.keep(fmt.Errorf("file sink: rotate: %w", err))
			return
		}
	}

	n, err := s.w.Write(data)
	s.written += int64(n)
	if err != nil {
		s.keep(fmt.Errorf("file sink: write: %w", err))
	}
}

// Close flushes the buffer, closes the file and returns any failure deferred
// from earlier Log calls alongside its own.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := []error{s.err}
	if err := s.w.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("file sink: flush: %w", err))
	}
	if err := s.f.Close(); err != nil {
		errs = append(errs, fmt.Errorf("file sink: close: %w", err))
	}
	return errors.Join(errs...)
}

// keep records the first deferred failure; later ones are dropped.
func (s *FileSink) keep(err error) {
	if s.err == nil {
		s.err = err
	}
}

// openFile opens (or creates) the sink file and wraps it in a bufio.Writer.
func (s *FileSink) openFile() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("file sink: open %s: %w", s.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file sink: stat %s: %w", s.path, err)
	}
	s.f = f
	s.w = bufio.NewWriterSize(f, s.bufSize)
	s.written = info.Size()
	return nil
}

// rotate flushes, closes the current file, renames it to {path}.1
// (shifting existing rotated files), and opens a new file.
func (s *FileSink) rotate() error {
	if err := s.w.Flush(); err != nil {
		return err
	}
	if err := s.f.Close(); err != nil {
		return err
	}

	// Shift existing rotated files: .2 -> .3, .1 -> .2, current -> .1
	for i := 9; i >= 1; i-- {
		from := fmt.Sprintf("%s.%d", s.path, i)
		to := fmt.Sprintf("%s.%d", s.path, i+1)
		os.Rename(from, to) // ignore errors, file may not exist
	}
	if err := os.Rename(s.path, s.path+".1"); err != nil {
		return err
	}

	s.written = 0
	return s.openFile()
}
