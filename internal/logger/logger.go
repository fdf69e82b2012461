package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pharmatrack/config"
)

// NewZapLogger builds the application logger from config. Unknown levels
// fall back to info.
func NewZapLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "json"
	}
	zapCfg := zap.NewProductionConfig()
	if encoding == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = encoding
	zapCfg.DisableCaller = cfg.DisableCaller
	zapCfg.DisableStacktrace = cfg.DisableStacktrace

	return zapCfg.Build()
}
