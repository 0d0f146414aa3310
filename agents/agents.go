// Package agents implements the two report orchestrators. Each agent runs a
// fixed, linear pipeline of tool and text-generation steps, records every
// step in an execution trace, and assembles the results into one report with
// every section populated. A step failure marks its own section only; the
// remaining steps still run.
package agents

import (
	"context"
	"fmt"

	"github.com/devang92/wayfarer/llm"
	"github.com/devang92/wayfarer/log"
	"github.com/devang92/wayfarer/trace"
)

// previewRunes bounds how much generated prose is recorded in a trace entry.
const previewRunes = 200

// fallbackMarker is the trace output recorded when generated prose was
// substituted from the static library.
const fallbackMarker = "Used pre-written fallback (LLM unavailable)"

// runStep records one tool invocation in the trace. A panic escaping fn is
// recovered into an error trace entry and returned; the pipeline continues.
func runStep[T any](ctx context.Context, tr *trace.Trace, tool string, inputs map[string]interface{}, fn func() T) (T, error) {
	handle := tr.Start(tool, inputs)
	out, err := capture(fn)
	if err != nil {
		log.Errorf(ctx, "step %s failed: %v", tool, err)
		finish(ctx, tr, handle, nil, err.Error())
		return out, err
	}
	finish(ctx, tr, handle, out, "")
	return out, nil
}

// generateStep records one text-generation step. The sentinel and any panic
// both resolve to the fallback text, so the returned section is never empty;
// only a panic is recorded as an error entry.
func generateStep(ctx context.Context, tr *trace.Trace, gen llm.Generator, tool string, inputs map[string]interface{}, prompt string, fallbackText func() string) string {
	handle := tr.Start(tool, inputs)
	text, err := capture(func() string {
		if gen == nil {
			return llm.Unavailable
		}
		return gen.Generate(ctx, prompt)
	})
	if err != nil {
		log.Errorf(ctx, "step %s failed: %v", tool, err)
		finish(ctx, tr, handle, nil, err.Error())
		return fallbackText()
	}
	if text == llm.Unavailable {
		finish(ctx, tr, handle, fallbackMarker, "")
		return fallbackText()
	}
	finish(ctx, tr, handle, preview(text), "")
	return text
}

func capture[T any](fn func() T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(), nil
}

func finish(ctx context.Context, tr *trace.Trace, handle int, output interface{}, errMsg string) {
	if err := tr.Finish(handle, output, errMsg); err != nil {
		log.Errorf(ctx, "trace finish: %v", err)
	}
}

// preview truncates generated prose for trace display.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}
