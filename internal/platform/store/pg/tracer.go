package pg

import (
	"context"
	"strings"

	"bankocr/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one statement round trip
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// maxLoggedArgs caps argument logging; batch inserts carry hundreds
const maxLoggedArgs = 16

// Tracer logs every statement at info, slow ones at warn, regardless of the root level
func Tracer(root logger.Logger) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: ll}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	if ev.Err != nil {
		evt = z.log.Error().Err(ev.Err)
	}
	args := ev.Args
	if len(args) > maxLoggedArgs {
		args = args[:maxLoggedArgs]
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", Compact(ev.SQL)).
		Int("nargs", len(ev.Args)).
		Interface("args", args).
		Msg("pg query")
}

// Compact folds runs of whitespace into one space and trims the ends
func Compact(s string) string { return strings.Join(strings.Fields(s), " ") }
