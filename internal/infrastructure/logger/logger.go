// Package logger wraps zerolog behind a small constructor API so every
// binary logs the same way: leveled, timestamped, and tagged with the
// service name. Output is JSON by default, with a console format for
// humans.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the lowest level that gets written (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format selects json or console output
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller stamps entries with the calling file and line
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName tags every entry with the emitting service
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-search-tool"`
}

// DefaultConfig returns the configuration used when none is supplied:
// info-level JSON without caller information.
func DefaultConfig() Config {
	return Config{
		Level:        "info",
		Format:       "json",
		EnableCaller: false,
		ServiceName:  "flight-search-tool",
	}
}

// Logger embeds a configured zerolog.Logger, so all of its event methods
// are available directly.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewCLI creates a logger for the command-line client. It writes
// human-readable output to stderr so that warnings (for example the
// fallback to the mock provider) never mix into the result table
// printed on stdout.
func NewCLI(level string) *Logger {
	return NewWithOutput(Config{
		Level:       level,
		Format:      "console",
		ServiceName: "flightsearch",
	}, os.Stderr)
}

// NewWithOutput creates a Logger writing to the given writer. Tests use it
// to capture output in a buffer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	ctx := zerolog.New(formatWriter(cfg.Format, output)).
		Level(levelOrInfo(cfg.Level)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// levelOrInfo parses a level name; unparsable names map to info.
func levelOrInfo(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// formatWriter wraps the output for console format; json writes as is.
func formatWriter(format string, output io.Writer) io.Writer {
	if format == "console" {
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}
	}
	return output
}

// WithContext returns a derived logger carrying an extra string field on
// every event.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{
		Logger: l.With().Str(key, value).Logger(),
	}
}

// WithRequestID returns a derived logger tagged with the request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithProvider returns a derived logger tagged with the provider name.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{
		Logger: zerolog.Nop(),
	}
}

// Global is the process-wide logger. main replaces it at startup; the
// package-level event functions fall back to DefaultConfig when it was
// never set.
var Global *Logger

// Init replaces the global logger with one built from cfg.
func Init(cfg Config) {
	Global = New(cfg)
}

// SetGlobal replaces the global logger.
func SetGlobal(l *Logger) {
	Global = l
}

func ensureGlobal() *Logger {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global
}

// Debug returns a debug level event from the global logger.
func Debug() *zerolog.Event { return ensureGlobal().Debug() }

// Info returns an info level event from the global logger.
func Info() *zerolog.Event { return ensureGlobal().Info() }

// Warn returns a warn level event from the global logger.
func Warn() *zerolog.Event { return ensureGlobal().Warn() }

// Error returns an error level event from the global logger.
func Error() *zerolog.Event { return ensureGlobal().Error() }

// Fatal returns a fatal level event from the global logger.
func Fatal() *zerolog.Event { return ensureGlobal().Fatal() }
