package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.SugaredLogger

// Init builds the process-wide logger. Production gets sampled JSON at
// info level; everything else gets unsampled debug output.
func Init(appEnv string) error {
	var cfg zap.Config
	if appEnv == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Encoding = "json"
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "ts"

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	global = base.Sugar()
	return nil
}

// GetLogger never returns nil; callers in tests get a default
// production logger without calling Init.
func GetLogger() *zap.SugaredLogger {
	if global == nil {
		base, _ := zap.NewProduction()
		global = base.Sugar()
	}
	return global
}

// Close flushes buffered entries.
func Close() error {
	if global != nil {
		return global.Sync()
	}
	return nil
}

func Info(message string, fields ...interface{})  { GetLogger().Infow(message, fields...) }
func Debug(message string, fields ...interface{}) { GetLogger().Debugw(message, fields...) }
func Warn(message string, fields ...interface{})  { GetLogger().Warnw(message, fields...) }
func Error(message string, fields ...interface{}) { GetLogger().Errorw(message, fields...) }

// Fatal logs and exits.
func Fatal(message string, fields ...interface{}) {
	GetLogger().Fatalw(message, fields...)
	os.Exit(1)
}

// WithRequest tags a logger with the per-request correlation fields.
func WithRequest(requestID string, userID int64, route string) *zap.SugaredLogger {
	return GetLogger().With(
		"request_id", requestID,
		"user_id", userID,
		"route", route,
	)
}
