package logger

import (
	"NK2Reader/internal/platform/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a development logger for devel deployments and a JSON
// production logger otherwise. An unknown LOG_LEVEL falls back to info.
func NewLogger(conf config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	if conf.IsDevel() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
