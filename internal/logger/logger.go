// Package logger wraps slog with trace correlation and OpenTelemetry spans.
// Every log call takes the request context so records carry trace and span
// ids whenever tracing is on.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "fantasy-projection"

// Options selects the level, format and sinks. The zero value logs text at
// INFO to stdout without tracing.
type Options struct {
	Level    string // DEBUG, INFO, WARN or ERROR
	Format   string // json or text
	Detailed bool   // force DEBUG and attach the caller to every record
	Tracing  bool   // export spans through the stdout exporter
	Output   io.Writer
}

type state struct {
	log      *slog.Logger
	tracing  bool
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

var std = state{log: slog.Default()}

// Init configures the package from LOG_* environment variables.
func Init() error {
	return Setup(OptionsFromEnv())
}

// OptionsFromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_DETAILED and
// LOG_TRACING_ENABLED.
func OptionsFromEnv() Options {
	return Options{
		Level:    os.Getenv("LOG_LEVEL"),
		Format:   os.Getenv("LOG_FORMAT"),
		Detailed: os.Getenv("LOG_DETAILED") == "true",
		Tracing:  os.Getenv("LOG_TRACING_ENABLED") == "true",
	}
}

// Setup replaces the package logger, and slog's default, according to opts.
// A tracer that fails to start is reported and tracing stays off.
func Setup(opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	level := parseLevel(opts.Level)
	if opts.Detailed {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level, AddSource: opts.Detailed}

	var h slog.Handler = slog.NewTextHandler(out, hopts)
	if opts.Format == "json" {
		h = slog.NewJSONHandler(out, hopts)
	}

	std = state{log: slog.New(h)}
	slog.SetDefault(std.log)

	if opts.Tracing {
		provider, err := newTracerProvider(out)
		if err != nil {
			std.log.Warn("Tracing disabled, exporter failed to start", "error", err)
			return nil
		}
		otel.SetTracerProvider(provider)
		std.provider = provider
		std.tracer = provider.Tracer(serviceName)
		std.tracing = true
	}
	return nil
}

// newTracerProvider exports spans as one JSON document per line to w, next
// to the log records.
func newTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, err
	}
	res := resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName))
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// Shutdown flushes pending spans.
func Shutdown(ctx context.Context) error {
	if std.provider == nil {
		return nil
	}
	return std.provider.Shutdown(ctx)
}

// parseLevel accepts slog level names in any case and falls back to INFO.
func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Enabled reports whether a record at level would be written.
func Enabled(ctx context.Context, level slog.Level) bool {
	return std.log.Enabled(ctx, level)
}

// StartSpan starts a child span of ctx. With tracing off it returns ctx and
// the span already in it, which may be a no-op span.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if !std.tracing {
		return ctx, trace.SpanFromContext(ctx)
	}
	return std.tracer.Start(ctx, name, opts...)
}

func Debug(ctx context.Context, msg string, args ...any) { emit(ctx, slog.LevelDebug, msg, args) }
func Info(ctx context.Context, msg string, args ...any) { emit(ctx, slog.LevelInfo, msg, args) }
func Warn(ctx context.Context, msg string, args ...any) { emit(ctx, slog.LevelWarn, msg, args) }
func Error(ctx context.Context, msg string, args ...any) { emit(ctx, slog.LevelError, msg, args) }

// ErrorWithErr logs at ERROR and marks the span in ctx as failed.
func ErrorWithErr(ctx context.Context, msg string, err error, args ...any) {
	failSpan(trace.SpanFromContext(ctx), err)
	emit(ctx, slog.LevelError, msg, append([]any{"error", err}, args...))
}

// emit records the caller two frames above it, which is the code that called
// the exported log function.
func emit(ctx context.Context, level slog.Level, msg string, args []any) {
	if !std.log.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	if sc := trace.SpanContextFromContext(ctx); std.tracing && sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	r.Add(args...)
	_ = std.log.Handler().Handle(ctx, r)
}

func failSpan(span trace.Span, err error) {
	if !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// OperationTimer times one unit of work and owns its span. Completion is
// logged at DEBUG, failure at ERROR.
type OperationTimer struct {
	ctx    context.Context
	span   trace.Span
	start  time.Time
	fields []any
}

// StartOperation opens a span named operation. fields are key/value pairs
// that are attached to the span and to the completion record.
func StartOperation(ctx context.Context, operation string, fields ...any) *OperationTimer {
	ctx, span := StartSpan(ctx, operation)
	span.SetAttributes(toAttributes(fields)...)

	return &OperationTimer{
		ctx:    ctx,
		span:   span,
		start:  time.Now(),
		fields: append([]any{"operation", operation}, fields...),
	}
}

// Context returns the context carrying the operation's span.
func (ot *OperationTimer) Context() context.Context { return ot.ctx }

func (ot *OperationTimer) End(fields ...any) {
	ot.finish(nil, fields)
}

func (ot *OperationTimer) EndWithError(err error, fields ...any) {
	ot.finish(err, fields)
}

func (ot *OperationTimer) finish(err error, extra []any) {
	elapsed := time.Since(ot.start).Milliseconds()

	if std.tracing {
		ot.span.SetAttributes(attribute.Int64("duration_ms", elapsed))
		ot.span.SetAttributes(toAttributes(extra)...)
		if err != nil {
			failSpan(ot.span, err)
		} else {
			ot.span.SetStatus(codes.Ok, "")
		}
		ot.span.End()
	}

	fields := append(append([]any{}, ot.fields...), "duration_ms", elapsed)
	if err != nil {
		fields = append(fields, "error", err)
	}
	fields = append(fields, extra...)

	if err != nil {
		emit(ot.ctx, slog.LevelError, "Operation failed", fields)
		return
	}
	emit(ot.ctx, slog.LevelDebug, "Operation completed", fields)
}

func toAttributes(fields []any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case string:
			attrs = append(attrs, attribute.String(key, v))
		case int:
			attrs = append(attrs, attribute.Int(key, v))
		case int64:
			attrs = append(attrs, attribute.Int64(key, v))
		case float64:
			attrs = append(attrs, attribute.Float64(key, v))
		case bool:
			attrs = append(attrs, attribute.Bool(key, v))
		default:
			attrs = append(attrs, attribute.String(key, fmt.Sprint(v)))
		}
	}
	return attrs
}
