// Package sink provides the destinations a countdown writes its lines to.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrWrite marks a failed write to any sink.
var ErrWrite = errors.New("sink write failed")

// Sink accepts one line of countdown output.
//
//go:generate mockgen -source=sink.go -destination=mock_sink.go -package=sink
type Sink interface {
	Emit(line string) error
}

// WriteError reports which destination rejected a line.
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("write %s: %v", e.Target, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Destination names the target that rejected the line.
func (e *WriteError) Destination() string { return e.Target }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// File replaces the whole content of a file with each line.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

func (f *File) Emit(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.WriteFile(f.path, []byte(line), 0o644); err != nil {
		return &WriteError{Target: f.path, Err: err}
	}
	return nil
}

// Console prints each line followed by a newline.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Emit(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintln(c.w, line); err != nil {
		return &WriteError{Target: "console", Err: err}
	}
	return nil
}

// Label forwards lines to a display callback.
type Label func(line string)

func (l Label) Emit(line string) error {
	if l != nil {
		l(line)
	}
	return nil
}

// Multi fans a line out to every sink in order. A failing sink does not
// prevent the others from receiving the line.
type Multi []Sink

func (m Multi) Emit(line string) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Emit(line); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps every emitted line in memory.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *Recorder) Emit(line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	return nil
}

func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}
