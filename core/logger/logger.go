package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level identifies the severity of a log record.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// Logger is a thread-safe, leveled, dual-sink writer. One instance is built
// at process start and shared by reference; all sink writes are serialized
// through a single mutex.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	out    io.Writer
	errOut io.Writer
	silent bool
	closed bool
}

// New creates a Logger whose file sink is truncated or created at path. A
// session banner with the construction timestamp is written as the first
// line. Returns ErrLogFileOpen (wrapped) when the file cannot be opened.
func New(path string, opts ...Option) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLogFileOpen, path, err)
	}

	l := &Logger{
		file:   f,
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(l)
	}

	fmt.Fprintf(f, "=== HTTP Server Log Started at %s ===\n", time.Now().Format(time.RFC3339))

	return l, nil
}

// Discard returns a logger with no file sink that drops every record. It is
// the default collaborator where no logger was injected.
func Discard() *Logger {
	return &Logger{
		out:    io.Discard,
		errOut: io.Discard,
		silent: true,
	}
}

// Debug writes a record to the file sink only.
func (l *Logger) Debug(msg string) { l.write(LevelDebug, msg) }

// Info writes a record to the file sink and, untagged, to stdout.
func (l *Logger) Info(msg string) { l.write(LevelInfo, msg) }

// Warning writes a tagged record to the file sink only.
func (l *Logger) Warning(msg string) { l.write(LevelWarning, msg) }

// Error writes a tagged record to the file sink and to stderr.
func (l *Logger) Error(msg string) { l.write(LevelError, msg) }

// Debugf is Debug with fmt.Sprintf formatting.
func (l *Logger) Debugf(format string, args ...any) { l.write(LevelDebug, fmt.Sprintf(format, args...)) }

// Infof is Info with fmt.Sprintf formatting.
func (l *Logger) Infof(format string, args ...any) { l.write(LevelInfo, fmt.Sprintf(format, args...)) }

// Warningf is Warning with fmt.Sprintf formatting.
func (l *Logger) Warningf(format string, args ...any) {
	l.write(LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf is Error with fmt.Sprintf formatting.
func (l *Logger) Errorf(format string, args ...any) { l.write(LevelError, fmt.Sprintf(format, args...)) }

func (l *Logger) write(level Level, msg string) {
	if l.silent {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Timestamp is assigned at write time, under the lock, so file lines are
	// both chronologically and call-ordered.
	if l.file != nil && !l.closed {
		line := time.Now().Format(time.RFC3339) + " "
		switch level {
		case LevelWarning:
			line += "WARNING: "
		case LevelError:
			line += "ERROR: "
		}
		_, _ = l.file.WriteString(line + msg + "\n")
	}

	switch level {
	case LevelInfo:
		fmt.Fprintln(l.out, msg)
	case LevelError:
		fmt.Fprintln(l.errOut, "ERROR: "+msg)
	}
}

// Close flushes and releases the file sink. It is idempotent and swallows
// close errors; the console sinks are left untouched.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.file == nil {
		return
	}

	_ = l.file.Sync()
	_ = l.file.Close()
	l.closed = true
}
