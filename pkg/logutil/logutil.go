// Package logutil provides logging utilities.
//
// Loggers returned by GetLogger discard everything until SetOutput,
// SetOutputFile or Configure is called, so that library code can log freely
// without affecting programs that never ask for logs.
package logutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
)

var (
	mu    sync.RWMutex
	cur   slog.Handler = discardHandler{}
	level              = new(slog.LevelVar)
	// If the output is set by SetOutputFile, outFile is the file opened for
	// it. Otherwise, outFile is nil.
	outFile *os.File
)

// GetLogger gets a logger for one component. The prefix is conventionally the
// component name in brackets followed by a space, like "[server] "; it
// becomes the value of the "component" attribute.
func GetLogger(prefix string) *slog.Logger {
	name := strings.TrimSpace(prefix)
	name = strings.TrimSuffix(strings.TrimPrefix(name, "["), "]")
	return slog.New(&handler{}).With("component", name)
}

// Format selects how log records are encoded.
type Format string

const (
	// FormatAuto is FormatText when the output is a terminal and FormatJSON
	// otherwise.
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name. The empty string is FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown log format %q", s)
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// SetLevel sets the minimum level of all loggers.
func SetLevel(l slog.Level) { level.Set(l) }

// Options configures the output of all loggers.
type Options struct {
	// Output receives the encoded records. A nil Output discards them,
	// except those sent to the journal.
	Output io.Writer
	Format Format
	// If true and the process runs as a systemd service, records are also
	// sent to the journal.
	Journal bool
}

// Configure sets the output of all loggers. It closes the file opened by a
// previous SetOutputFile call, if any.
func Configure(opts Options) {
	var handlers []slog.Handler
	if opts.Output != nil {
		handlers = append(handlers, newHandler(opts.Output, opts.Format))
	}
	if opts.Journal && underSystemd() {
		if h, err := newJournalHandler(); err == nil {
			handlers = append(handlers, h)
		} else if len(handlers) > 0 {
			slog.New(handlers[0]).Warn("cannot open systemd journal", "error", err)
		}
	}

	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = discardHandler{}
	case 1:
		h = handlers[0]
	default:
		h = slogmulti.Fanout(handlers...)
	}

	mu.Lock()
	defer mu.Unlock()
	cur = h
	closeOutFile()
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer, in the auto format.
func SetOutput(newout io.Writer) {
	Configure(Options{Output: newout})
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger
// to the file with the given name. If the name is empty, output is discarded.
func SetOutputFile(fname string) error {
	return ConfigureFile(fname, Options{})
}

// ConfigureFile is like Configure, but with the output going to the file with
// the given name, which is opened for appending. If the name is empty, it is
// the same as Configure.
func ConfigureFile(fname string, opts Options) error {
	if fname == "" {
		Configure(opts)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	opts.Output = file
	Configure(opts)
	mu.Lock()
	outFile = file
	mu.Unlock()
	return nil
}

// HasOutputFile reports whether the output was last set to a file by
// SetOutputFile or ConfigureFile.
func HasOutputFile() bool {
	mu.RLock()
	defer mu.RUnlock()
	return outFile != nil
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}

func newHandler(w io.Writer, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON || (format != FormatText && !isTerminal(w)) {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func current() slog.Handler {
	mu.RLock()
	defer mu.RUnlock()
	return cur
}

// handler forwards to the handler installed at the time of each call,
// replaying the attributes and groups added to the logger.
type handler struct {
	ops []func(slog.Handler) slog.Handler
}

func (h *handler) Enabled(ctx context.Context, l slog.Level) bool {
	return current().Enabled(ctx, l)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	target := current()
	for _, op := range h.ops {
		target = op(target)
	}
	return target.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(t slog.Handler) slog.Handler { return t.WithAttrs(attrs) })
}

func (h *handler) WithGroup(name string) slog.Handler {
	return h.with(func(t slog.Handler) slog.Handler { return t.WithGroup(name) })
}

func (h *handler) with(op func(slog.Handler) slog.Handler) *handler {
	ops := make([]func(slog.Handler) slog.Handler, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &handler{ops: append(ops, op)}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
