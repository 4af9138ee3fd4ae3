package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module names the component a log line originates from.
type Module string

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Service     ServiceInfo
	Environment Environment
	Module      Module
	Level       slog.Level
	Format      Format
	Output      io.Writer
}

// New builds the process logger. Records carry the service attributes and,
// when the context holds a span, its trace and span IDs.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var base slog.Handler
	if cfg.Format == FormatJSON {
		base = slog.NewJSONHandler(out, opts)
	} else {
		base = slog.NewTextHandler(out, opts)
	}

	attrs := []slog.Attr{
		slog.String("service", cfg.Service.Name),
		slog.String("version", cfg.Service.Version),
		slog.String("env", string(cfg.Environment)),
	}
	if cfg.Service.Revision != "" {
		attrs = append(attrs, slog.String("revision", cfg.Service.Revision))
	}
	if cfg.Module != "" {
		attrs = append(attrs, slog.String("module", string(cfg.Module)))
	}

	return slog.New(newTraceHandler(base.WithAttrs(attrs)))
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
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

// ParseFormat maps LOG_FORMAT values; production defaults to JSON.
func ParseFormat(format string, env Environment) Format {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	}
	if env == EnvProd {
		return FormatJSON
	}
	return FormatText
}
