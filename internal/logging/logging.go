package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/williampepple1/post-inspector/internal/config"
)

// New builds a logger writing to out at the configured level and format
func New(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	zerolog.TimeFieldFormat = time.RFC3339
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %s", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// RestyLogger adapts a zerolog logger to the resty client logger
type RestyLogger struct {
	logger zerolog.Logger
}

// Resty returns a resty compatible logger backed by l
func Resty(l zerolog.Logger) *RestyLogger {
	return &RestyLogger{logger: l.With().Str("component", "http").Logger()}
}

func (r *RestyLogger) Errorf(format string, v ...interface{}) {
	r.logger.Error().Msgf(format, v...)
}

func (r *RestyLogger) Warnf(format string, v ...interface{}) {
	r.logger.Warn().Msgf(format, v...)
}

func (r *RestyLogger) Debugf(format string, v ...interface{}) {
	r.logger.Debug().Msgf(format, v...)
}
