package logger

import "io"

// Option configures logger behavior.
type Option func(*Logger)

// WithSilent makes every level method a no-op. Construction behavior is
// unchanged: the file sink is still created and the banner written.
func WithSilent() Option {
	return func(l *Logger) {
		l.silent = true
	}
}

// WithConsole redirects the console sinks, primarily for tests. Info lines go
// to out, Error lines to errOut.
func WithConsole(out, errOut io.Writer) Option {
	return func(l *Logger) {
		l.out = out
		l.errOut = errOut
	}
}
