package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how much is logged.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	Dir    string // rotate log files here; empty logs to stderr
}

// Logger is a slog logger that may own a rotating log file.
type Logger struct {
	*slog.Logger
	LogFile string

	closer io.Closer
}

// New builds a logger. Without a directory, records go to stderr.
func New(cfg Config) (*Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	l := &Logger{}
	if cfg.Dir != "" {
		lj := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "ghud.slog"),
			MaxSize:    16, // MB
			MaxBackups: 2,
		}
		w, l.LogFile, l.closer = lj, lj.Filename, lj
	}
	l.Logger = slog.New(newHandler(w, cfg.Format, lvl))

	l.Info("Hello logging", slog.Time("start", time.Now()))
	l.Info("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS),
		slog.Int("NumCPUs", runtime.NumCPU()))
	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Info("Build", slog.String("Go version", bi.GoVersion), slog.String("Path", bi.Path))
	}
	return l, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
}

func newHandler(w io.Writer, format string, lvl slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
