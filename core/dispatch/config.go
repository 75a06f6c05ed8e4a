package dispatch

// Config holds dispatcher configuration with environment variable support.
type Config struct {
	// Root is the document root directory. The caller is responsible for
	// verifying it exists before constructing the dispatcher.
	Root string `env:"SERVEDIR_ROOT" envDefault:"."`

	// IndexFile is served automatically when a request resolves to a
	// directory containing it.
	IndexFile string `env:"SERVEDIR_INDEX_FILE" envDefault:"index.html"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Root:      ".",
		IndexFile: "index.html",
	}
}

// NewFromConfig creates a Dispatcher from configuration.
// Additional options can override config values.
func NewFromConfig(cfg Config, opts ...Option) *Dispatcher {
	return New(cfg.Root, append([]Option{WithIndexFile(cfg.IndexFile)}, opts...)...)
}
