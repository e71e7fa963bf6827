// Package logger backs ports.Logger with zap, writing JSON lines to a
// rotating file so the terminal stays free for the session.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/doeshing/xterm-go/internal/domain"
)

// Options configures the file logger.
type Options struct {
	File    string
	Level   string
	Verbose bool
}

// ZapLogger implements ports.Logger.
type ZapLogger struct {
	z    *zap.Logger
	file *lumberjack.Logger
}

// New builds a logger appending to opts.File. Verbose forces debug level.
func New(opts Options) (*ZapLogger, error) {
	if opts.File == "" {
		return NewNop(), nil
	}
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), domain.DirectoryPermissions); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), zap.NewAtomicLevelAt(level))

	return &ZapLogger{z: zap.New(core), file: file}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{z: zap.NewNop()}
}

// With returns a child logger that adds fields to every entry.
func (l *ZapLogger) With(fields map[string]interface{}) *ZapLogger {
	return &ZapLogger{z: l.z.With(toZap(fields)...), file: l.file}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.z.Debug(msg, toZap(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.z.Info(msg, toZap(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.z.Warn(msg, toZap(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.z.Error(msg, append(toZap(fields), zap.Error(err))...)
}

// Close flushes buffered entries and releases the log file.
func (l *ZapLogger) Close() error {
	_ = l.z.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func toZap(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		out = append(out, zap.Any(key, value))
	}
	return out
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", domain.LogLevelInfo:
		return zapcore.InfoLevel, nil
	case domain.LogLevelDebug:
		return zapcore.DebugLevel, nil
	case domain.LogLevelWarn:
		return zapcore.WarnLevel, nil
	case domain.LogLevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}
