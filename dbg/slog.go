package dbg

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DIYEmbeddedSystems/debug-tools/core"
	"github.com/DIYEmbeddedSystems/debug-tools/formatter"
	"github.com/DIYEmbeddedSystems/debug-tools/stream"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Facility. It lets code written against the standard library's
// log/slog emit through the facility's severity gate and line layout
// during debugging. Attrs are appended to the message as key=value
// pairs; the line itself stays the facility's fixed text layout.
type SlogHandler struct {
	facility *Facility
	min      slog.Level
	attrs    []slog.Attr
	group    string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given
// Facility. Records below min are rejected outright; the facility's
// own threshold applies on top of that.
func NewSlogHandler(f *Facility, min slog.Level) *SlogHandler {
	return &SlogHandler{
		facility: f,
		min:      min,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min && h.facility.Enabled(slogLevelToCore(level))
}

// Handle renders a slog.Record through the facility's line layout.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if record.Level < h.min || !h.facility.Enabled(level) {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(record.Message)
	// Pre-configured attrs were qualified when they were added.
	for _, a := range h.attrs {
		appendAttr(&sb, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})

	var s *stream.Stream
	if level == core.LevelError {
		s = h.facility.errOut
	} else {
		s = h.facility.out
	}

	rec := core.GetRecord()
	rec.Level = level
	rec.Tag = level.String()
	rec.Caller = core.CallerForPC(record.PC)
	rec.Message = sb.String()

	err := formatter.WriteTo(rec, s)
	core.PutRecord(rec)
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
// Attrs are qualified with the handler's current group, so a group
// opened later does not retroactively prefix them.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		facility: h.facility,
		min:      h.min,
		attrs:    newAttrs,
		group:    h.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &SlogHandler{
		facility: h.facility,
		min:      h.min,
		attrs:    h.attrs,
		group:    newGroup,
	}
}

// slogLevelToCore maps slog levels onto the facility's severity
// order. Note the inversion: slog counts error as highest, the
// facility counts INFO as highest (most verbose).
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.LevelError
	case level >= slog.LevelWarn:
		return core.LevelWarning
	case level >= slog.LevelInfo:
		return core.LevelInfo
	default:
		return core.LevelDebug
	}
}

// appendAttr writes " key=value" to the builder, prefixing the group
// name when present. Group-valued attrs flatten recursively.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
