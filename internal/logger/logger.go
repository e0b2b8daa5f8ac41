package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar = build()
)

func build() *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(core).Sugar()
}

// SetDebug enables or disables debug-level output.
func SetDebug(on bool) {
	if on {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Info logs an informational message under a component tag.
func Info(tag, msg string) {
	sugar.Infof("[%s] %s", tag, msg)
}

// Success logs a completed-step message under a component tag.
func Success(tag, msg string) {
	sugar.Infof("[%s] ✓ %s", tag, msg)
}

// Warn logs a warning under a component tag.
func Warn(tag, msg string) {
	sugar.Warnf("[%s] %s", tag, msg)
}

// Error logs an error under a component tag.
func Error(tag, msg string) {
	sugar.Errorf("[%s] %s", tag, msg)
}

// Debug logs a debug message under a component tag.
func Debug(tag, msg string) {
	sugar.Debugf("[%s] %s", tag, msg)
}

// Section prints a visual separator with a title.
func Section(title string) {
	sugar.Infof("%s", strings.Repeat("=", 60))
	sugar.Infof("  %s", title)
	sugar.Infof("%s", strings.Repeat("=", 60))
}

// Stats prints a single key/value statistics line.
func Stats(key string, value interface{}) {
	sugar.Infof("  %-28s %v", key+":", value)
}

// Banner prints the startup banner.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	sugar.Infof("routesweep %s - six-continent carrier route search", version)
}

// Sync flushes buffered log entries. Call before exit.
func Sync() {
	_ = sugar.Sync()
}

// Infof is a convenience formatter for tagged output.
func Infof(tag, format string, args ...interface{}) {
	Info(tag, fmt.Sprintf(format, args...))
}
