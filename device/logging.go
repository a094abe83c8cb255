package device

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger adapts a zap.SugaredLogger to the Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l *zapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.s.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, keysAndValues...)
}

// NewZapLogger wraps a zap logger as a device Logger.
func NewZapLogger(logger *zap.Logger) Logger {
	return &zapLogger{s: logger.Sugar()}
}

// newEnvLogger builds the default session logger from the ULANZI_DEBUG
// and ULANZI_LOG_LEVEL switches. Returns nil when neither is set, which
// leaves logging off.
func newEnvLogger(env envConfig) Logger {
	if !env.Debug && env.LogLevel == "" {
		return nil
	}

	level := zapcore.DebugLevel
	if !env.Debug {
		parsed, err := zapcore.ParseLevel(strings.ToLower(env.LogLevel))
		if err != nil {
			parsed = zapcore.InfoLevel
		}
		level = parsed
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil
	}
	return NewZapLogger(logger)
}
