// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package observability builds the process logger.
package observability

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gviegas/mathtuple/config"
)

var (
	global atomic.Pointer[zap.Logger]
	once   sync.Once
)

// New creates a logger that writes to w and, if
// cfg.LogFile is set, to a rotated JSON file.
func New(cfg config.LoggerConfig, w zapcore.WriteSyncer) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder(cfg.Format), w, level)}
	if cfg.LogFile != "" {
		fw := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoder("json"), fw, level))
	}

	opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if cfg.AddSource {
		opts = append(opts, zap.AddCaller())
	}
	l := zap.New(zapcore.NewTee(cores...), opts...)
	if cfg.ServiceName != "" {
		l = l.Named(cfg.ServiceName)
	}
	return l
}

// Initialize sets the global logger.
// Only the first call has any effect.
func Initialize(cfg config.LoggerConfig, w zapcore.WriteSyncer) {
	once.Do(func() {
		l := New(cfg, w)
		global.Store(l)
		zap.ReplaceGlobals(l)
	})
}

// ResetForTest clears the global logger.
// It must only be used by tests.
func ResetForTest() {
	global.Store(nil)
	once = sync.Once{}
}

// Logger returns the global logger, or a no-op logger
// if Initialize has not been called.
func Logger() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Sync flushes the global logger.
func Sync() {
	if l := global.Load(); l != nil {
		// Syncing a terminal fails on some platforms.
		_ = l.Sync()
	}
}

func encoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	if format == "json" {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}
