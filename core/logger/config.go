package logger

// Config holds logger configuration with environment variable support.
type Config struct {
	// FilePath is the location of the file sink. The file is truncated and
	// recreated on every construction.
	FilePath string `env:"SERVEDIR_LOG_FILE" envDefault:"server.log"`

	// Silent turns every level method into a no-op. Construction still
	// truncates the file and writes the session banner.
	Silent bool `env:"SERVEDIR_LOG_SILENT" envDefault:"false"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		FilePath: "server.log",
	}
}

// NewFromConfig creates a Logger from configuration.
// Additional options can override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Logger, error) {
	if cfg.Silent {
		opts = append([]Option{WithSilent()}, opts...)
	}
	return New(cfg.FilePath, opts...)
}
