// Command logspan-demo runs a small bracketed workload against a chosen sink
// family, as a smoke test and a showcase of the line format.
//
// Logging is configured from a YAML file (-config) or LOGSPAN_* environment
// variables; -sink picks the facility the lines are written to.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dangunter/logspan/pkg/logspan"
	"github.com/dangunter/logspan/pkg/logspan/logcfg"
	"github.com/dangunter/logspan/pkg/logspan/zapsink"
	"github.com/dangunter/logspan/pkg/logspan/zerologsink"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML logging config; empty means LOGSPAN_* env")
		family     = flag.String("sink", "slog", "sink family: slog | zap | zerolog | multi")
		count      = flag.Int("n", 5, "number of greetings")
		delay      = flag.Duration("delay", 100*time.Millisecond, "pause between greetings")
	)
	flag.Parse()

	s, err := buildSinks(*configPath, *family)
	if err != nil {
		log.Fatalf("failed to build sinks: %v", err)
	}
	defer func() {
		if err := s.close(); err != nil {
			fmt.Fprintf(os.Stderr, "logspan-demo: %v\n", err)
		}
	}()

	logspan.Event(s.info, "configured", logspan.F("sink", *family))

	t0 := logspan.Start(s.info, "main")

	t := logspan.Start(s.info, "multiple greetings", logspan.F("n", *count))
	for i := 0; i < *count; i++ {
		if err := logspan.Wrap(s.info, "say_hello", sayHello); err != nil {
			log.Fatalf("say_hello: %v", err)
		}
		logspan.Event(s.debug, "hello_count", logspan.F("num", i+1))
		time.Sleep(*delay)
	}
	logspan.End(s.info, "multiple greetings", t, logspan.F("n", *count))

	// Hostile input stays on one line once sanitized.
	logspan.Event(s.info, "greeting recorded",
		logspan.Sanitize(logspan.F("text", "hello,\n\tworld!"))...)

	logspan.End(s.info, "main", t0, logspan.Status(0))
}

func sayHello() error {
	fmt.Println("hello, world!")
	return nil
}

// sinks holds the informational and debug-level views of one facility.
type sinks struct {
	info  logspan.Sink
	debug logspan.Sink
	close func() error
}

// buildSinks configures the requested logging facility and wraps it at info
// and debug severity.
func buildSinks(configPath, family string) (sinks, error) {
	noop := func() error { return nil }

	switch family {
	case "slog":
		l, err := slogLogger(configPath)
		if err != nil {
			return sinks{}, err
		}
		return sinks{
			info:  logspan.NewSlogSink(l, slog.LevelInfo),
			debug: logspan.NewSlogSink(l, slog.LevelDebug),
			close: noop,
		}, nil

	case "zap":
		l, err := zap.NewDevelopment()
		if err != nil {
			return sinks{}, err
		}
		return sinks{
			info:  zapsink.New(l, zapcore.InfoLevel),
			debug: zapsink.New(l, zapcore.DebugLevel),
			close: func() error { return l.Sync() },
		}, nil

	case "zerolog":
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		return sinks{
			info:  zerologsink.New(l, zerolog.InfoLevel),
			debug: zerologsink.New(l, zerolog.DebugLevel),
			close: noop,
		}, nil

	case "multi":
		l, err := slogLogger(configPath)
		if err != nil {
			return sinks{}, err
		}
		f, err := logspan.NewFileSink("logspan-demo.log")
		if err != nil {
			return sinks{}, err
		}
		console := logspan.NewSlogSink(l, slog.LevelInfo)
		return sinks{
			info:  logspan.NewMultiSink(console, f),
			debug: logspan.NewMultiSink(logspan.NewSlogSink(l, slog.LevelDebug), f),
			close: f.Close,
		}, nil

	default:
		return sinks{}, fmt.Errorf("unknown sink family %q", family)
	}
}

// slogLogger builds the slog logger from the config file when given, from
// LOGSPAN_* environment variables otherwise, installing it as the default
// either way.
func slogLogger(configPath string) (*slog.Logger, error) {
	if configPath != "" {
		return logcfg.Configure(configPath)
	}
	return logcfg.Init(logcfg.FromEnv())
}
