// Package observability provides structured logging, Prometheus metrics and
// OpenTelemetry tracing for optics views.
package observability

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/authcorp/optics/config"
)

// LogConfig selects the handler and minimum level of a logger.
type LogConfig struct {
	Level  string
	Format string
	Output io.Writer
}

// LogConfigFrom reads log.level and log.format from cfg.
func LogConfigFrom(cfg *config.Config) LogConfig {
	return LogConfig{
		Level:  cfg.GetString("log.level"),
		Format: cfg.GetString("log.format"),
	}
}

// NewLogger creates a structured logger. Attributes whose keys look
// sensitive are redacted.
func NewLogger(cfg LogConfig) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(cfg.Level),
		ReplaceAttr: redactAttr,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// sensitivePatterns for PII redaction.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|passwd|pwd)`),
	regexp.MustCompile(`(?i)(token|api[_-]?key|secret|credential)`),
}

func isSensitive(key string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(key) {
			return true
		}
	}
	return false
}

// RedactSensitive redacts values stored under sensitive keys.
func RedactSensitive(key string, value any) any {
	if isSensitive(key) {
		return "[REDACTED]"
	}
	return value
}

func redactAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		return a
	}
	if isSensitive(a.Key) {
		return slog.String(a.Key, "[REDACTED]")
	}
	return a
}
