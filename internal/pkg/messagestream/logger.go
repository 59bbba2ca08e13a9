package messagestream

import (
	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

type zapLoggerAdapter struct {
	log *zap.Logger
}

// NewZapLoggerAdapter routes watermill logs to zap. Trace is logged at
// debug level.
func NewZapLoggerAdapter(log *zap.Logger) watermill.LoggerAdapter {
	return &zapLoggerAdapter{log: log}
}

func (z *zapLoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	z.log.Error(msg, append(toZapFields(fields), zap.Error(err))...)
}

func (z *zapLoggerAdapter) Info(msg string, fields watermill.LogFields) {
	z.log.Info(msg, toZapFields(fields)...)
}

func (z *zapLoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	z.log.Debug(msg, toZapFields(fields)...)
}

func (z *zapLoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	z.log.Debug(msg, toZapFields(fields)...)
}

func (z *zapLoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapLoggerAdapter{log: z.log.With(toZapFields(fields)...)}
}

func toZapFields(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
