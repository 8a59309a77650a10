// Package logspan renders structured begin/end/event lines onto a logger you
// already have. It owns no logger of its own: every operation takes a Sink
// (an adapter around slog, zap, zerolog, a plain io.Writer, ...) and writes
// exactly one formatted line to it.
//
// Quick start:
//
//	sink := logspan.NewSlogSink(slog.Default(), slog.LevelInfo)
//
//	t0 := logspan.Start(sink, "ingest", logspan.F("file", path))
//	rows := ingest(path)
//	logspan.End(sink, "ingest", t0, logspan.F("file", path), logspan.F("rows", rows))
//
// produces lines like
//
//	2026-08-25T14:03:07.241005 ingest.begin ; file=data.csv
//	2026-08-25T14:03:07.298411 ingest.end (0.057406) ; file=data.csv rows=1042
//
// Pairing of begin and end lines is a naming convention, not tracked state:
// nothing here outlives a single call, and a Sink shared across goroutines is
// exactly as safe as the Sink itself makes it.
package logspan
