// Package logger owns the process-wide zerolog instance. Call Init once
// during startup; every later Init returns the logger built by the first.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger on first Init.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn or error.
	// Anything else falls back to info.
	Level string
	// Pretty switches from JSON lines to a colored console writer. Leave it
	// off in production so log collectors get structured output.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu      sync.Mutex
	current *zerolog.Logger
)

// Init builds the shared logger on the first call and returns it. Later
// calls ignore their options and hand back the same instance.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		l := build(opts)
		current = &l
	}
	return *current
}

// Get returns the shared logger. It panics when called before Init so that
// a missing initialization fails loudly instead of silently dropping logs.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		panic("logger: Get called before Init")
	}
	return *current
}

// Reset discards the shared instance. Test helper, never call it in
// production.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(opts.Level))]
	if !ok {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger()
}

var levelNames = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}
