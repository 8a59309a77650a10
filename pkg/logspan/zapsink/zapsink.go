// Package zapsink adapts a zap.Logger into a logspan.Sink.
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dangunter/logspan/pkg/logspan"
)

// New returns a Sink that submits each line to l at the given level.
func New(l *zap.Logger, level zapcore.Level) logspan.Sink {
	return sink{l: l, level: level}
}

type sink struct {
	l     *zap.Logger
	level zapcore.Level
}

func (s sink) Log(line string) {
	s.l.Log(s.level, line)
}
