package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

var (
	outputMu sync.RWMutex
	output   io.Writer = os.Stderr

	// globalFormat 保存 LogFormat，每条记录输出时读取
	globalFormat atomic.Int32
)

// sharedOutput 每次写入时读取当前 output，SetOutput 对已创建的 Logger 立即生效
type sharedOutput struct{}

func (sharedOutput) Write(p []byte) (int, error) {
	outputMu.RLock()
	w := output
	outputMu.RUnlock()
	return w.Write(p)
}

// subsystemHandler 带独立可调级别的 slog.Handler
//
// text 与 json 两套下游 handler 共享属性与分组，输出时按 globalFormat 选择。
type subsystemHandler struct {
	subsystem string
	level     *slog.LevelVar
	text      slog.Handler
	json      slog.Handler
}

func newHandler(subsystem string, level slog.Level, addSource bool) *subsystemHandler {
	lv := new(slog.LevelVar)
	lv.Set(level)

	// 下游不过滤级别
	opts := &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		AddSource:   addSource,
		ReplaceAttr: renameAttr,
	}
	base := []slog.Attr{slog.String("subsystem", subsystem)}

	return &subsystemHandler{
		subsystem: subsystem,
		level:     lv,
		text:      slog.NewTextHandler(sharedOutput{}, opts).WithAttrs(base),
		json:      slog.NewJSONHandler(sharedOutput{}, opts).WithAttrs(base),
	}
}

// renameAttr 时间键输出为 ts，级别输出为小写名称
func renameAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(levelName(lvl))
		}
	}
	return a
}

func (h *subsystemHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *subsystemHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.current().Handle(ctx, r)
}

func (h *subsystemHandler) current() slog.Handler {
	if LogFormat(globalFormat.Load()) == FormatJSON {
		return h.json
	}
	return h.text
}

func (h *subsystemHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(h.text.WithAttrs(attrs), h.json.WithAttrs(attrs))
}

func (h *subsystemHandler) WithGroup(name string) slog.Handler {
	return h.derive(h.text.WithGroup(name), h.json.WithGroup(name))
}

// derive 派生的 handler 与原 handler 共享级别，SetLevel 对两者同时生效
func (h *subsystemHandler) derive(text, json slog.Handler) *subsystemHandler {
	return &subsystemHandler{
		subsystem: h.subsystem,
		level:     h.level,
		text:      text,
		json:      json,
	}
}

// SetLevel 调整级别
func (h *subsystemHandler) SetLevel(level slog.Level) {
	h.level.Set(level)
}

// levelName 四个标准级别之外按 info 输出
func levelName(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "debug"
	case slog.LevelWarn:
		return "warn"
	case slog.LevelError:
		return "error"
	}
	return "info"
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// DiscardHandler 返回丢弃所有记录的 Handler
func DiscardHandler() slog.Handler {
	return discardHandler{}
}
