package logspan

import (
	"fmt"
	"strings"

	"github.com/dangunter/logspan/internal/textclean"
)

// KV is one key/value context pair. Values may be of any type; they are
// rendered with fmt.Sprint when the line is formatted.
type KV struct {
	Key   string
	Value any
}

// F builds a context pair. The name is short because call sites stack up:
//
//	logspan.Start(sink, "fetch", logspan.F("host", h), logspan.F("port", p))
func F(key string, value any) KV {
	return KV{Key: key, Value: value}
}

// Status builds the conventional status=<code> pair for end lines.
// Zero means success, anything else is caller-defined.
func Status(code int) KV {
	return KV{Key: "status", Value: code}
}

// FormatKV renders pairs as "k1=v1 k2=v2": pairs separated by single spaces,
// key and value joined by "=", values in their fmt.Sprint form. No pairs
// yields the empty string.
//
// Keys and values are written verbatim. A "=" or space inside either is not
// escaped; callers that need parseable output under hostile input should run
// pairs through Sanitize first.
//
// Keys are expected to be unique within a call. When they are not, the last
// value wins and is rendered at the key's first position, the same way
// repeated inserts behave in an ordered map.
func FormatKV(pairs ...KV) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range pairs {
		if seen(pairs[:i], p.Key) {
			continue
		}
		v := p.Value
		for _, q := range pairs[i+1:] {
			if q.Key == p.Key {
				v = q.Value
			}
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		fmt.Fprint(&b, v)
	}
	return b.String()
}

func seen(pairs []KV, key string) bool {
	for _, p := range pairs {
		if p.Key == key {
			return true
		}
	}
	return false
}

// Sanitize returns a copy of pairs that is safe for single-line key=value
// parsing: keys and values are normalized to NFC, control characters become
// "_", and in keys "=" and white space become "_" as well. Values are
// rendered to strings in the process.
//
// This is a stricter, opt-in contract. The core operations never sanitize;
// by default whatever the caller passes is written verbatim.
func Sanitize(pairs ...KV) []KV {
	if pairs == nil {
		return nil
	}
	out := make([]KV, len(pairs))
	for i, p := range pairs {
		out[i] = KV{
			Key:   textclean.Key(p.Key),
			Value: textclean.Value(fmt.Sprint(p.Value)),
		}
	}
	return out
}
