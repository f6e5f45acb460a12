package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/errors"
)

const instrumentationName = "github.com/authcorp/optics"

// Instrumenter decorates views so that every dispatch through them is traced,
// counted and logged.
type Instrumenter struct {
	ctx     context.Context
	tracer  trace.Tracer
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures an Instrumenter.
type Option func(*Instrumenter)

// WithTracer sets the tracer spans are started on.
func WithTracer(tracer trace.Tracer) Option {
	return func(in *Instrumenter) { in.tracer = tracer }
}

// WithMetrics sets the metrics operations are recorded in.
func WithMetrics(m *Metrics) Option {
	return func(in *Instrumenter) { in.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Instrumenter) { in.logger = logger }
}

// WithContext sets the parent context of every span.
func WithContext(ctx context.Context) Option {
	return func(in *Instrumenter) { in.ctx = ctx }
}

// NewInstrumenter creates an Instrumenter. Without options it uses the global
// tracer provider and the default logger and records no metrics.
func NewInstrumenter(opts ...Option) *Instrumenter {
	in := &Instrumenter{
		ctx:    context.Background(),
		tracer: otel.Tracer(instrumentationName),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Instrument returns a view that behaves like view and reports each
// operation under name. A capability view keeps exactly its capabilities.
func (in *Instrumenter) Instrument(name string, view optics.View) optics.View {
	o, isOptic := view.Optic()
	exposes := func(present bool) bool { return !isOptic || present }

	wrapped := optics.Optic{Name: name}
	if exposes(o.Create != nil) {
		wrapped.Create = func() (any, error) {
			return in.observe("create", name, func() (any, error) {
				return optics.Create(view)
			})
		}
	}
	if exposes(o.Get != nil) {
		wrapped.Get = func(v any) (any, error) {
			return in.observe("get", name, func() (any, error) {
				return optics.Get(v, view)
			})
		}
	}
	if exposes(o.Set != nil || o.Update != nil) {
		wrapped.Set = func(v, payload any) (any, error) {
			return in.observe("set", name, func() (any, error) {
				return optics.Set(v, view, payload)
			})
		}
	}
	if exposes(o.Update != nil) {
		wrapped.Update = func(v any, fn func(any) (any, error)) (any, error) {
			return in.observe("update", name, func() (any, error) {
				return optics.TryUpdate(v, view, fn)
			})
		}
	}
	if exposes(o.Has != nil) {
		wrapped.Has = func(v any) (bool, error) {
			found, err := in.observe("has", name, func() (any, error) {
				return optics.Has(v, view)
			})
			if err != nil {
				return false, err
			}
			return found.(bool), nil
		}
	}
	if exposes(o.Remove != nil) {
		wrapped.Remove = func(v any) (any, error) {
			return in.observe("remove", name, func() (any, error) {
				return optics.Remove(v, view)
			})
		}
	}
	return optics.New(wrapped)
}

func (in *Instrumenter) observe(op, view string, fn func() (any, error)) (any, error) {
	ctx, span := in.tracer.Start(in.ctx, "optics."+op,
		trace.WithAttributes(
			attribute.String("optics.operation", op),
			attribute.String("optics.view", view),
		),
	)
	defer span.End()

	start := time.Now()
	result, err := fn()
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		code := "unknown"
		if e, ok := errors.AsType[*errors.Error](err); ok {
			code = string(e.Code)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("optics.error_code", code))
		if in.metrics != nil {
			in.metrics.ErrorsTotal.WithLabelValues(op, view, code).Inc()
		}
		in.logger.ErrorContext(ctx, "optics operation failed",
			slog.String("operation", op),
			slog.String("view", view),
			slog.String("code", code),
			slog.Any("error", err),
		)
	} else {
		span.SetStatus(codes.Ok, "")
		in.logger.DebugContext(ctx, "optics operation",
			slog.String("operation", op),
			slog.String("view", view),
			slog.Duration("duration", elapsed),
		)
	}

	if in.metrics != nil {
		in.metrics.OperationsTotal.WithLabelValues(op, view, status).Inc()
		in.metrics.OperationSeconds.WithLabelValues(op, view).Observe(elapsed.Seconds())
	}
	return result, err
}
