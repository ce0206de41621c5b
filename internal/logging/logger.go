package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Logger is the application logger. It writes console-encoded entries to stderr so
// rendered output on stdout stays clean.
var Logger = New()

// New creates a logger instance using the standard configuration.
func New() *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}

// SetLevel changes the minimum level of every logger created by this package.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// ForComponent returns a logger enriched with a static component name.
func ForComponent(name string) *zap.SugaredLogger {
	return Logger.With("component", name)
}

// Info logs at information level with structured key/value pairs.
func Info(logger *zap.SugaredLogger, msg string, keysAndValues ...any) {
	logger.Infow(msg, keysAndValues...)
}

// Debug logs at debug level with structured key/value pairs.
func Debug(logger *zap.SugaredLogger, msg string, keysAndValues ...any) {
	logger.Debugw(msg, keysAndValues...)
}

// Warn logs at warning level with structured key/value pairs.
func Warn(logger *zap.SugaredLogger, msg string, keysAndValues ...any) {
	logger.Warnw(msg, keysAndValues...)
}

// Error logs at error level with structured key/value pairs.
func Error(logger *zap.SugaredLogger, msg string, keysAndValues ...any) {
	logger.Errorw(msg, keysAndValues...)
}
