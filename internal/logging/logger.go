// Package logging builds the application logger.
//
// The terminal belongs to the interactive UI, so nothing is ever written to
// stdout or stderr. Records fan out to a log file in the config directory when
// debugging, and to the systemd journal when one is reachable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"

	"todo/internal/config"
)

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else yields warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Options selects the sinks for New.
type Options struct {
	// Files each receive text records.
	Files []io.Writer

	// Journal enables the systemd journal sink.
	Journal bool
}

// New creates a logger at level writing to the sinks in opts.
// With no usable sink the logger discards everything.
func New(level slog.Leveler, opts Options) *slog.Logger {
	var handlers []slog.Handler

	for _, w := range opts.Files {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}))
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err == nil {
			handlers = append(handlers, journalHandler)
		}
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler)
	case 1:
		return slog.New(handlers[0])
	default:
		return slog.New(slogmulti.Fanout(handlers...))
	}
}

// Setup creates the logger for cfg. With Debug set, records at debug level and
// above are appended to cfg.LogPath(). The returned closer releases the log file
// and is never nil.
func Setup(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.LogLevel))

	opts := Options{Journal: journalAvailable()}
	var closer io.Closer = nopCloser{}

	if cfg.Debug {
		level.Set(slog.LevelDebug)
		if err := cfg.EnsureDir(); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		opts.Files = append(opts.Files, f)
		closer = f
	}

	logger := New(level, opts)
	slog.SetDefault(logger)
	return logger, closer, nil
}

// journalAvailable reports whether the journald socket exists.
func journalAvailable() bool {
	_, err := os.Stat("/run/systemd/journal/socket")
	return err == nil
}

// toJournalKey converts an attribute key to the journal's field name rules:
// upper case letters, digits and underscores.
func toJournalKey(key string) string {
	key = strings.ToUpper(key)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, key)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
