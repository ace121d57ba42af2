package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
)

// Tracer is a function that is used to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, or (*testing.T).Log.
type Tracer func(v ...any)

// Stage identifies what a trace line is reporting.
type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)

// String returns the prefix written at the start of each trace line.
func (s Stage) String() string {
	switch s {
	case StageTry:
		return "TRY"
	case StageGot:
		return "GOT"
	case StageFail:
		return "ERR"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// DefaultPreview is the number of input elements shown in a trace line when
// no TraceConfig is given.
const DefaultPreview = 10

// TraceConfig configures the output of Trace.
type TraceConfig struct {
	// Tracer receives each line. A nil Tracer disables tracing.
	Tracer Tracer

	// Preview is the maximum number of input elements to show. Zero means
	// DefaultPreview. A negative value hides the input entirely.
	Preview int
}

// Trace returns a parser that behaves exactly like p, but reports each attempt
// and its outcome to tr under the given name.
func Trace[S, T, E any](name string, tr Tracer, p ParserFunc[S, T, E]) ParserFunc[S, T, E] {
	return TraceWith(name, TraceConfig{Tracer: tr}, p)
}

// TraceWith works like Trace, but with a full TraceConfig.
func TraceWith[S, T, E any](name string, cfg TraceConfig, p ParserFunc[S, T, E]) ParserFunc[S, T, E] {
	if cfg.Tracer == nil {
		return p
	}

	return func(input []S) Result[S, T, E] {
		trace(cfg, StageTry, name, input, nil)

		r := p(input)
		if !r.ok {
			trace(cfg, StageFail, name, input, r.Err)
			return r
		}

		trace(cfg, StageGot, name, input, r.Value)
		return r
	}
}

func trace[S any](cfg TraceConfig, stage Stage, name string, input []S, outcome any) {
	out := &strings.Builder{}
	fmt.Fprintf(out, "%s %s(", stage, name)

	if cfg.Preview >= 0 {
		n := cfg.Preview
		if n == 0 {
			n = DefaultPreview
		}

		if len(input) > n {
			fmt.Fprintf(out, "%s…", repr.String(input[:n]))
		} else {
			fmt.Fprint(out, repr.String(input))
		}
	}

	fmt.Fprint(out, ")")

	switch stage {
	case StageFail:
		fmt.Fprintf(out, ": %s", repr.String(outcome))
	case StageGot:
		fmt.Fprintf(out, " = %s", repr.String(outcome))
	}

	cfg.Tracer(out.String())
}
