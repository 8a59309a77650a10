package logspan

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
)

// Sink is the injected logging destination. Each operation formats one line
// and hands it to Log; the severity is whatever the Sink was built with
// (informational, conventionally).
//
// Log returns nothing: Go logging facilities do not surface per-call write
// errors, and neither do these adapters (stdlib log.Print behaves the same
// way). Panics out of a Sink propagate to the caller untouched. Sharing a
// Sink across goroutines is safe exactly when the underlying facility is;
// logspan adds no locking and no ordering of its own.
type Sink interface {
	Log(line string)
}

// NewWriterSink returns a Sink that writes each line plus a newline to w.
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Log(line string) {
	fmt.Fprintln(s.w, line)
}

// NewLogSink returns a Sink that forwards each line to l.Print.
func NewLogSink(l *log.Logger) Sink {
	return logSink{l: l}
}

type logSink struct {
	l *log.Logger
}

func (s logSink) Log(line string) {
	s.l.Print(line)
}

// NewSlogSink returns a Sink that submits each line to l at the given level.
// The level is fixed at construction; build another sink to log at another
// level, the adapter is a cheap value.
func NewSlogSink(l *slog.Logger, level slog.Level) Sink {
	return slogSink{l: l, level: level}
}

type slogSink struct {
	l     *slog.Logger
	level slog.Level
}

func (s slogSink) Log(line string) {
	s.l.Log(context.Background(), s.level, line)
}

// NewMultiSink returns a Sink that delivers every line to each of sinks in
// order. Delivery is sequential; a panicking sink stops the fan-out.
func NewMultiSink(sinks ...Sink) Sink {
	return multiSink{sinks: sinks}
}

type multiSink struct {
	sinks []Sink
}

func (m multiSink) Log(line string) {
	for _, s := range m.sinks {
		s.Log(line)
	}
}
