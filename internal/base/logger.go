package base

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/half-nothing/simple-booking/internal/interfaces/global"
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

type Logger struct {
	mu      sync.Mutex
	level   slog.Level
	logFile *os.File
}

func NewLogger() *Logger {
	return &Logger{level: slog.LevelInfo}
}

func (logger *Logger) Init(debug bool) {
	if debug {
		logger.level = slog.LevelDebug
	}
	file, err := os.OpenFile(global.LogFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "fail to open log file %s: %v\n", global.LogFilePath, err)
	} else {
		logger.logFile = file
	}
	slog.SetDefault(slog.New(newConsoleHandler(logger)))
}

func (logger *Logger) log(level slog.Level, msg string) {
	if level < logger.level {
		return
	}
	logger.mu.Lock()
	defer logger.mu.Unlock()
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	tag := level.String()
	if c, ok := levelColors[level]; ok {
		tag = c.Sprint(tag)
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s [%s] %s\n", timestamp, tag, msg)
	if logger.logFile != nil {
		_, _ = fmt.Fprintf(logger.logFile, "%s [%s] %s\n", timestamp, level.String(), msg)
	}
}

func (logger *Logger) Debug(msg string, v ...interface{}) { logger.log(slog.LevelDebug, msg) }
func (logger *Logger) DebugF(msg string, v ...interface{}) {
	logger.log(slog.LevelDebug, fmt.Sprintf(msg, v...))
}
func (logger *Logger) Info(msg string, v ...interface{}) { logger.log(slog.LevelInfo, msg) }
func (logger *Logger) InfoF(msg string, v ...interface{}) {
	logger.log(slog.LevelInfo, fmt.Sprintf(msg, v...))
}
func (logger *Logger) Warn(msg string, v ...interface{}) { logger.log(slog.LevelWarn, msg) }
func (logger *Logger) WarnF(msg string, v ...interface{}) {
	logger.log(slog.LevelWarn, fmt.Sprintf(msg, v...))
}
func (logger *Logger) Error(msg string, v ...interface{}) { logger.log(slog.LevelError, msg) }
func (logger *Logger) ErrorF(msg string, v ...interface{}) {
	logger.log(slog.LevelError, fmt.Sprintf(msg, v...))
}
func (logger *Logger) Fatal(msg string, v ...interface{}) { logger.log(slog.LevelError, msg) }
func (logger *Logger) FatalF(msg string, v ...interface{}) {
	logger.log(slog.LevelError, fmt.Sprintf(msg, v...))
}

type LoggerShutdownCallback struct {
	logger *Logger
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	if lc.logger.logFile == nil {
		return nil
	}
	return lc.logger.logFile.Close()
}

func (logger *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{logger: logger}
}

// consoleHandler routes slog records (request logs from slog-echo among
// them) through the application logger.
type consoleHandler struct {
	logger *Logger
	attrs  []slog.Attr
}

func newConsoleHandler(logger *Logger) *consoleHandler {
	return &consoleHandler{logger: logger}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.logger.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	msg := record.Message
	appendAttr := func(attr slog.Attr) bool {
		msg += fmt.Sprintf(" %s=%v", attr.Key, attr.Value)
		return true
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	record.Attrs(appendAttr)
	h.logger.log(record.Level, msg)
	return nil
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &consoleHandler{logger: h.logger, attrs: merged}
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler { return h }
