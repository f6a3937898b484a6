// Package logger provides a global, Sugared Zap logger that is aware of the
// request context. Loggers derived with Derive travel inside a
// context.Context, and every entry carries the OpenTelemetry trace and span
// identifiers of the active span, when there is one.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the unexported type of the context key holding a derived logger.
type ctxKeyType struct{}

var (
	// ctxKey stores the request-scoped *zap.SugaredLogger inside a context.
	ctxKey = ctxKeyType{}

	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// output is where entries are written.
	output io.Writer = os.Stdout

	// nopLogger is used until Init succeeds, so packages can log from tests
	// without configuring the logger first.
	nopLogger = zap.NewNop().Sugar()
)

// Init configures the global logger to emit JSON to stdout at the given
// level ("debug", "info", "warn", "error", "panic", "fatal"). Calling Init
// multiple times has no effect after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(output),
			lvl,
		)

		baseLogger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return base().Sync()
}

// base returns the configured logger, or a no-op logger before Init.
func base() *zap.SugaredLogger {
	if baseLogger == nil {
		return nopLogger
	}

	return baseLogger
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the trace identifiers of the active span and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = base()
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With("trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// Derive returns a copy of ctx carrying a logger enriched with the given
// key/value pairs. Entries logged with the returned context include them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = base()
	}

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

// log writes msg at the given level using the context-derived logger.
func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
