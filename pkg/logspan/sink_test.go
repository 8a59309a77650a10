package logspan

import (
	"bytes"
	"log"
	"log/slog"
	"strings"
	"testing"
)

func TestWriterSinkAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	sink.Log("first")
	sink.Log("second")

	if got := buf.String(); got != "first\nsecond\n" {
		t.Errorf("buffer = %q, want %q", got, "first\nsecond\n")
	}
}

func TestLogSinkForwardsToPrint(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))

	sink.Log("one event ; ")

	if got := buf.String(); got != "one event ; \n" {
		t.Errorf("buffer = %q, want %q", got, "one event ; \n")
	}
}

func TestSlogSinkCarriesLineAsMessage(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sink := NewSlogSink(l, slog.LevelInfo)

	Event(sink, "one event")

	out := buf.String()
	if !strings.Contains(out, "one event ; ") {
		t.Errorf("output %q does not carry the formatted line", out)
	}
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("output %q not at INFO", out)
	}
}

func TestSlogSinkRespectsHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sink := NewSlogSink(l, slog.LevelDebug)

	Event(sink, "too quiet")

	// The handler filters below its level; that is the facility's business.
	if buf.Len() != 0 {
		t.Errorf("expected the debug line to be dropped, got %q", buf.String())
	}
}

func TestMultiSinkFanOut(t *testing.T) {
	a := &recordSink{}
	b := &recordSink{}
	c := &recordSink{}
	m := NewMultiSink(a, b, c)

	Event(m, "one event", F("k", "v"))

	for i, s := range []*recordSink{a, b, c} {
		if len(s.lines) != 1 {
			t.Errorf("sink %d: got %d lines, want 1", i, len(s.lines))
			continue
		}
		if !strings.HasSuffix(s.lines[0], "one event ; k=v") {
			t.Errorf("sink %d: line %q", i, s.lines[0])
		}
	}
}

func TestMultiSinkDeliversInOrder(t *testing.T) {
	var order []string
	m := NewMultiSink(tagSink{"a", &order}, tagSink{"b", &order}, tagSink{"c", &order})

	m.Log("x")
	m.Log("y")

	want := "a b c a b c"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("delivery order %q, want %q", got, want)
	}
}

// tagSink appends its tag on every Log, for ordering assertions.
type tagSink struct {
	tag string
	out *[]string
}

func (s tagSink) Log(string) {
	*s.out = append(*s.out, s.tag)
}
