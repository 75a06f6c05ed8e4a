package dispatch

import "github.com/dmitrymomot/servedir/core/logger"

// Option configures dispatcher behavior.
type Option func(*Dispatcher)

// WithIndexFile sets the file name served automatically when a request
// resolves to a directory. Defaults to "index.html".
func WithIndexFile(name string) Option {
	return func(d *Dispatcher) {
		if name != "" {
			d.index = name
		}
	}
}

// WithLogger sets the logger the pipeline reports to. Defaults to a discard
// logger.
func WithLogger(log *logger.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}
