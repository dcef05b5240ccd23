package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// defaultZapLevel is the fallback when an unknown level string is provided.
const defaultZapLevel = zapcore.InfoLevel

func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// newZapLogger constructs a sugared zap logger writing a console encoding to
// stdout at the provided level.
func newZapLogger(levelStr string) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		zap.NewAtomicLevelAt(toZapLevel(levelStr)),
	)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}
