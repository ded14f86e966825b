package handler

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/willibrandon/botlog/core"
)

// SourceProperty holds the caller location when AddSource is set.
const SourceProperty = "source"

// attrBatch is a set of attributes added with WithAttrs under the groups that
// were open at the time.
type attrBatch struct {
	groups []string
	attrs  []slog.Attr
}

// SlogHandler implements slog.Handler on top of a botlog logger.
//
// Groups become nested map[string]any properties. Only the AddSource and Level
// fields of slog.HandlerOptions are honored.
type SlogHandler struct {
	logger  core.Logger
	opts    slog.HandlerOptions
	batches []attrBatch
	groups  []string
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a new slog.Handler that writes to the provided logger.
func NewSlogHandler(logger core.Logger, opts *slog.HandlerOptions) *SlogHandler {
	h := &SlogHandler{logger: logger}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.opts.Level != nil && level < h.opts.Level.Level() {
		return false
	}
	return h.logger.IsEnabled(SlogLevelToCore(level))
}

// Handle converts the record into a log event and writes it.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	props := make(map[string]any, record.NumAttrs()+len(h.batches))

	for _, batch := range h.batches {
		target := props
		for _, g := range batch.groups {
			target = subMap(target, g)
		}
		for _, a := range batch.attrs {
			addAttr(target, a)
		}
	}

	if record.NumAttrs() > 0 {
		target := props
		for _, g := range h.groups {
			target = subMap(target, g)
		}
		record.Attrs(func(a slog.Attr) bool {
			addAttr(target, a)
			return true
		})
	}

	if h.opts.AddSource && record.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := fs.Next()
		if f.File != "" {
			props[SourceProperty] = map[string]any{
				"file":     f.File,
				"line":     f.Line,
				"function": f.Function,
			}
		}
	}

	h.logger.WriteEvent(&core.LogEvent{
		Timestamp:  record.Time,
		Level:      SlogLevelToCore(record.Level),
		Message:    record.Message,
		Properties: props,
	})
	return nil
}

// WithAttrs returns a new Handler whose attributes consist of
// both the receiver's attributes and the arguments.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	clone.batches = append(clone.batches, attrBatch{
		groups: h.groups,
		attrs:  append([]slog.Attr(nil), attrs...),
	})
	return clone
}

// WithGroup returns a new Handler with the given group appended to
// the receiver's existing groups.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(append([]string(nil), h.groups...), name)
	return clone
}

func (h *SlogHandler) clone() *SlogHandler {
	return &SlogHandler{
		logger:  h.logger,
		opts:    h.opts,
		batches: append([]attrBatch(nil), h.batches...),
		groups:  h.groups,
	}
}

// addAttr stores a in dst following the slog rules: empty attributes are
// dropped, groups nest, and groups with an empty key are inlined.
func addAttr(dst map[string]any, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() != slog.KindGroup {
		dst[a.Key] = a.Value.Any()
		return
	}

	attrs := a.Value.Group()
	if len(attrs) == 0 {
		return
	}
	target := dst
	if a.Key != "" {
		target = subMap(dst, a.Key)
	}
	for _, ga := range attrs {
		addAttr(target, ga)
	}
}

func subMap(dst map[string]any, key string) map[string]any {
	if m, ok := dst[key].(map[string]any); ok {
		return m
	}
	m := make(map[string]any)
	dst[key] = m
	return m
}

// SlogLevelToCore converts slog levels to botlog levels.
func SlogLevelToCore(level slog.Level) core.LogEventLevel {
	switch {
	case level < slog.LevelDebug:
		return core.VerboseLevel
	case level < slog.LevelInfo:
		return core.DebugLevel
	case level < slog.LevelWarn:
		return core.InformationLevel
	case level < slog.LevelError:
		return core.WarningLevel
	case level < slog.LevelError+4:
		return core.ErrorLevel
	default:
		return core.FatalLevel
	}
}

// CoreLevelToSlog converts botlog levels to slog levels.
func CoreLevelToSlog(level core.LogEventLevel) slog.Level {
	switch level {
	case core.VerboseLevel:
		return slog.LevelDebug - 4
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InformationLevel:
		return slog.LevelInfo
	case core.WarningLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	case core.FatalLevel:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
