// Package logging provides the compact slog handler used by every command.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// ANSI color codes.
const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiYellow  = "\033[33m"
	ansiCyan    = "\033[36m"
	ansiGray    = "\033[90m"
	ansiMagenta = "\033[35m"
)

// Multi-line attributes are rendered as indented blocks below the log line.
var blockKeys = map[string]bool{
	"prompt": true,
	"reply":  true,
}

// Options configures a Handler.
type Options struct {
	Level slog.Leveler
	Color bool
}

// Handler is a compact, optionally colored slog handler.
// A "session" attribute is lifted out of the key=value tail and shown as a tag.
type Handler struct {
	w      io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	color  bool
	attrs  []slog.Attr
	prefix string // group prefix for attribute keys
}

// NewHandler creates a new log handler.
func NewHandler(w io.Writer, opts *Options) *Handler {
	if opts == nil {
		opts = &Options{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
		color: opts.Color,
	}
}

// Setup installs a Handler writing to f as the default logger.
// Color is enabled only when f is a terminal.
func Setup(f *os.File, level slog.Level) *slog.Logger {
	color := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	logger := slog.New(NewHandler(f, &Options{Level: level, Color: color}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var ts string
	if h.color {
		ts = r.Time.Format("15:04:05")
	} else {
		ts = r.Time.Format("2006-01-02 15:04:05")
	}

	var (
		session string
		inline  strings.Builder
		blocks  []string
	)
	collect := func(a slog.Attr) {
		a.Value = a.Value.Resolve()
		if a.Key == "session" {
			session = a.Value.String()
			return
		}
		if blockKeys[a.Key[strings.LastIndex(a.Key, ".")+1:]] {
			blocks = append(blocks, a.Value.String())
			return
		}
		inline.WriteString(h.fmtAttr(a))
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collect(h.qualify(a))
		return true
	})

	var sb strings.Builder
	if h.color {
		fmt.Fprintf(&sb, "%s%s%s %s ", ansiGray, ts, ansiReset, colorLevel(r.Level, levelLabel(r.Level)))
		if session != "" {
			fmt.Fprintf(&sb, "%s[%s]%s ", ansiMagenta, session, ansiReset)
		}
	} else {
		fmt.Fprintf(&sb, "%s %s ", ts, levelLabel(r.Level))
		if session != "" {
			fmt.Fprintf(&sb, "[%s] ", session)
		}
	}
	sb.WriteString(r.Message)
	sb.WriteString(inline.String())
	sb.WriteByte('\n')

	for _, text := range blocks {
		for _, line := range strings.Split(text, "\n") {
			if h.color {
				fmt.Fprintf(&sb, "  %s│%s %s\n", ansiGray, ansiReset, line)
			} else {
				fmt.Fprintf(&sb, "  | %s\n", line)
			}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	for _, a := range attrs {
		combined = append(combined, h.qualify(a))
	}
	clone := *h
	clone.attrs = combined
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if h.prefix != "" {
		a.Key = h.prefix + a.Key
	}
	return a
}

func (h *Handler) fmtAttr(a slog.Attr) string {
	val := a.Value.String()
	if strings.ContainsAny(val, " \t") {
		val = fmt.Sprintf("%q", val)
	}
	if h.color {
		return fmt.Sprintf(" %s%s%s=%s", ansiGray, a.Key, ansiReset, val)
	}
	return fmt.Sprintf(" %s=%s", a.Key, val)
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERR"
	case level >= slog.LevelWarn:
		return "WRN"
	case level >= slog.LevelInfo:
		return "INF"
	default:
		return "DBG"
	}
}

func colorLevel(level slog.Level, label string) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed + label + ansiReset
	case level >= slog.LevelWarn:
		return ansiYellow + label + ansiReset
	case level >= slog.LevelInfo:
		return ansiCyan + label + ansiReset
	default:
		return ansiGray + label + ansiReset
	}
}
