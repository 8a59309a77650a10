// Package otelsink records logspan lines as OpenTelemetry span events, so
// bracketed activities show up inside whatever span the caller is already in.
package otelsink

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/dangunter/logspan/pkg/logspan"
)

// New returns a Sink that adds each line as an event on span. A non-recording
// span (the zero span, or one from a no-op tracer) swallows the lines, which
// makes the sink safe to build unconditionally.
func New(span trace.Span) logspan.Sink {
	return sink{span: span}
}

// FromContext returns a Sink bound to the span active in ctx, if any.
func FromContext(ctx context.Context) logspan.Sink {
	return New(trace.SpanFromContext(ctx))
}

type sink struct {
	span trace.Span
}

func (s sink) Log(line string) {
	s.span.AddEvent(line)
}
