package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LogOptions configures command logging.
type LogOptions struct {
	Level  string `help:"Log level." default:"info" enum:"trace,debug,info,warn,error"`
	Format string `help:"Log output format." default:"console" enum:"console,json"`
}

// NewLogger builds a zerolog logger writing to out.
func NewLogger(opts LogOptions, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	if opts.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
