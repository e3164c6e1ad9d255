package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger реализует Logger поверх zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// Config holds logger configuration.
type Config struct {
	Level       string // debug, info, warn, error
	Development bool
}

func NewLogger(cfg Config, prefix string) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var config zap.Config
	if cfg.Development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	sugar := zapLogger.Sugar()
	if prefix != "" {
		sugar = sugar.Named(prefix)
	}
	return &ZapLogger{sugar: sugar}, nil
}

// NewDevLogger возвращает логгер для тестов и локального запуска.
func NewDevLogger(prefix string) *ZapLogger {
	l, _ := NewLogger(Config{Level: "debug", Development: true}, prefix)
	return l
}

func (l *ZapLogger) Log(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *ZapLogger) Errorf(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *ZapLogger) WithPrefix(prefix string) Logger {
	return &ZapLogger{sugar: l.sugar.Named(prefix)}
}

func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
