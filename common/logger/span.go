package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "critic.app/backend"

// Span attribute keys mirroring the LogFields of the same context.
const (
	AttrRequestID = attribute.Key("critic.request_id")
	AttrPersona   = attribute.Key("critic.persona")
	AttrMode      = attribute.Key("critic.mode")
	AttrComponent = attribute.Key("critic.component")
)

// SpanContext is one traced stage of a feedback request.
type SpanContext struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan starts a child span and stamps it with the context's LogFields,
// so a persona span carries the same request id, persona and mode as the
// log lines written inside it.
//
//	ctx = logger.WithLogFields(ctx, logger.LogFields{Persona: logger.Ptr("creative")})
//	sc := logger.StartSpan(ctx, "feedback.persona")
//	defer sc.End()
//	ctx = sc.Context()
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) *SpanContext {
	attrs = append(fieldAttributes(GetLogFields(ctx)), attrs...)
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
	return &SpanContext{ctx: ctx, span: span}
}

func (sc *SpanContext) Context() context.Context {
	return sc.ctx
}

func (sc *SpanContext) End() {
	sc.span.End()
}

// SetAttributes records facts known only after the stage ran, such as a
// persona's outcome.
func (sc *SpanContext) SetAttributes(attrs ...attribute.KeyValue) {
	sc.span.SetAttributes(attrs...)
}

// Fail records err on the span and marks it as failed. A nil err is ignored.
func (sc *SpanContext) Fail(err error) {
	if err == nil {
		return
	}
	sc.span.RecordError(err)
	sc.span.SetStatus(codes.Error, err.Error())
}

func fieldAttributes(f LogFields) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if f.RequestID != nil {
		attrs = append(attrs, AttrRequestID.Int64(*f.RequestID))
	}
	if f.Persona != nil {
		attrs = append(attrs, AttrPersona.String(*f.Persona))
	}
	if f.Mode != nil {
		attrs = append(attrs, AttrMode.String(*f.Mode))
	}
	if f.Component != "" {
		attrs = append(attrs, AttrComponent.String(f.Component))
	}
	return attrs
}
