package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	ServiceName string
	Development bool
}

// Logger is the application logger type
type Logger = zap.Logger

var global = zap.NewNop()

// Init initializes the global logger
func Init(cfg *Config) error {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Level != "" {
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			zcfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	opts := []zap.Option{}
	if cfg.ServiceName != "" {
		opts = append(opts, zap.Fields(zap.String("service", cfg.ServiceName)))
	}

	log, err := zcfg.Build(opts...)
	if err != nil {
		return err
	}

	global = log
	return nil
}

// Get returns the global logger
func Get() *Logger {
	return global
}

// Sync flushes any buffered log entries
func Sync() {
	_ = global.Sync()
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	global.Fatal(msg, fields...)
}
