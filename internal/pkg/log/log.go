package log

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	mu     sync.RWMutex
	global Logger = &logger{zap: zap.NewNop()}
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...any)
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
	Zap() *zap.Logger
}

type logger struct {
	zap *zap.Logger
}

// SetupLogger builds the production JSON logger. level falls back to info
// when it cannot be parsed.
func SetupLogger(level ...string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if len(level) > 0 {
		if lvl, err := zapcore.ParseLevel(level[0]); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewExample()
	}
	return l
}

// Setup returns a logger that discards everything; used by tests.
func Setup() Logger {
	return New(zap.NewNop())
}

func New(z *zap.Logger) Logger {
	return &logger{zap: z}
}

func Init(z *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = New(z)
}

func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// WithRequestID stores the request id so every log line of the request
// carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (l *logger) Zap() *zap.Logger {
	return l.zap
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...any) {
	l.zap.Debug(msg, toFields(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...any) {
	l.zap.Info(msg, toFields(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.zap.Warn(msg, toFields(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...any) {
	l.zap.Error(msg, toFields(ctx, fields)...)
}

func toFields(ctx context.Context, args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args)+1)
	if id := RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			fields = append(fields, v)
		case error:
			fields = append(fields, zap.Error(v))
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fields
}
