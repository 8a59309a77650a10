// Package zerologsink adapts a zerolog.Logger into a logspan.Sink.
package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/dangunter/logspan/pkg/logspan"
)

// New returns a Sink that submits each line to l at the given level.
func New(l zerolog.Logger, level zerolog.Level) logspan.Sink {
	return sink{l: l, level: level}
}

type sink struct {
	l     zerolog.Logger
	level zerolog.Level
}

func (s sink) Log(line string) {
	s.l.WithLevel(s.level).Msg(line)
}
