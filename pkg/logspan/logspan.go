package logspan

import (
	"strconv"
	"time"
)

// TimestampLayout is the time.Format layout used for line timestamps:
// ISO-8601-like local time with the microsecond fraction always present.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// kvSep sits between the message part and the key/value section. It is
// written even when there are no pairs, so every line ends in " ; " at worst.
const kvSep = " ; "

// Timestamp renders t the way emitted lines do.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Start emits "<ts> <name>.begin ; <kv>" to sink and returns the stamped
// instant. That instant is the token a matching End uses to compute elapsed
// time; logspan itself does not track the pairing.
func Start(sink Sink, name string, pairs ...KV) time.Time {
	t0 := time.Now()
	sink.Log(Timestamp(t0) + " " + name + ".begin" + kvSep + FormatKV(pairs...))
	return t0
}

// End emits "<ts> <name>.end (<elapsed>) ; <kv>" to sink and returns elapsed,
// computed as now minus t0. Elapsed is rendered in seconds with exactly six
// fractional digits whatever its magnitude; a t0 from the future yields a
// negative value and is reported as-is, never clamped.
//
// A zero t0 means the start instant is unknown: the line carries no duration
// ("<ts> <name>.end ; <kv>") and End returns 0.
func End(sink Sink, name string, t0 time.Time, pairs ...KV) time.Duration {
	t1 := time.Now()
	if t0.IsZero() {
		sink.Log(Timestamp(t1) + " " + name + ".end" + kvSep + FormatKV(pairs...))
		return 0
	}
	elapsed := t1.Sub(t0)
	sink.Log(Timestamp(t1) + " " + name + ".end (" + seconds(elapsed) + ")" + kvSep + FormatKV(pairs...))
	return elapsed
}

// Event emits "<ts> <message> ; <kv>" to sink.
func Event(sink Sink, message string, pairs ...KV) {
	sink.Log(Timestamp(time.Now()) + " " + message + kvSep + FormatKV(pairs...))
}

// Wrap runs fn bracketed between Start and End lines under the given name
// and returns fn's error. The same pairs annotate both lines. If fn panics,
// the panic propagates and no end line is emitted.
func Wrap(sink Sink, name string, fn func() error, pairs ...KV) error {
	t0 := Start(sink, name, pairs...)
	err := fn()
	End(sink, name, t0, pairs...)
	return err
}

// seconds renders d as fixed-precision seconds, e.g. "0.000280".
func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}
