// Package log 提供 go-eventkit 统一日志接口
//
// 基于 Go 标准库 log/slog，是 internal/util/logger 的公开门面：
// 模块外部的调用方通过本包调整所有子系统 Logger 的输出目标、级别与格式。
package log

import (
	"context"
	"io"
	"log/slog"

	"github.com/dep2p/go-eventkit/internal/util/logger"
)

// 日志级别常量（从 slog 导出，方便使用）
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Default 返回全局 logger
func Default() *slog.Logger {
	return logger.GlobalLogger()
}

// Logger 返回指定组件的 logger
//
// 同一组件多次调用返回同一实例；之后的 SetOutput/SetLevel/SetFormat 对其生效。
func Logger(component string) *slog.Logger {
	return logger.Logger(component)
}

// SetOutput 设置日志输出目标
//
// 已创建的 logger 也会重定向到 w。常用于将日志输出到文件。
//
// 示例：
//
//	file, _ := os.OpenFile("app.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
//	log.SetOutput(file)
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetOutputWithLevel 同时设置日志输出目标和级别
func SetOutputWithLevel(w io.Writer, level slog.Level) {
	logger.SetOutput(w)
	logger.SetGlobalLevel(level)
}

// SetLevel 设置所有组件的日志级别
func SetLevel(level slog.Level) {
	logger.SetGlobalLevel(level)
}

// SetComponentLevel 设置单个组件的日志级别
func SetComponentLevel(component string, level slog.Level) {
	logger.SetLevel(component, level)
}

// SetJSON 切换为 JSON 输出（false 恢复文本输出）
func SetJSON(enabled bool) {
	if enabled {
		logger.SetFormat(logger.FormatJSON)
		return
	}
	logger.SetFormat(logger.FormatText)
}

// Configure 按名称应用级别与格式
//
// level 格式同 EVENTKIT_LOG_LEVEL，例如 "core/event=debug,info"；
// format 为 "text" 或 "json"。存在无法识别的级别时返回 false。
func Configure(level, format string) bool {
	return logger.Apply(level, format)
}

// Discard 返回丢弃所有日志的 logger
func Discard() *slog.Logger {
	return logger.Discard()
}

// ============================================================================
//                              快捷方法
// ============================================================================

// Debug 输出 Debug 级别日志
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info 输出 Info 级别日志
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

// Warn 输出 Warn 级别日志
func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

// Error 输出 Error 级别日志
func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

// DebugContext 带 context 的 Debug 日志
func DebugContext(ctx context.Context, msg string, args ...any) {
	Default().DebugContext(ctx, msg, args...)
}

// InfoContext 带 context 的 Info 日志
func InfoContext(ctx context.Context, msg string, args ...any) {
	Default().InfoContext(ctx, msg, args...)
}

// WarnContext 带 context 的 Warn 日志
func WarnContext(ctx context.Context, msg string, args ...any) {
	Default().WarnContext(ctx, msg, args...)
}

// ErrorContext 带 context 的 Error 日志
func ErrorContext(ctx context.Context, msg string, args ...any) {
	Default().ErrorContext(ctx, msg, args...)
}
