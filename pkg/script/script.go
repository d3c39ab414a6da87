// Package script provides the Lisp scripting surface of PanCAD. It wraps
// zygomys in a sandboxed environment and builds a part file from user
// source code.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/pancad/pancad/pkg/feature"
)

// EvalError is a non-fatal error encountered during evaluation, such as a
// parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// Engine wraps the zygomys interpreter. It is safe for concurrent use;
// each call to Evaluate creates a fresh sandboxed environment so results
// are deterministic.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates an engine.
func NewEngine() *Engine {
	return &Engine{}
}

type evalResult struct {
	part   *feature.PartFile
	errors []EvalError
	err    error
}

// Evaluate runs PanCAD Lisp source and produces the part it defines.
//
// Return semantics:
//   - on success: part + nil errors + nil error
//   - on parse or eval failure: nil part + eval errors + nil error
//   - on fatal failure (timeout, panic): nil + nil + error
func (e *Engine) Evaluate(source string) (*feature.PartFile, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		p, evalErrs, err := e.evaluate(source)
		ch <- evalResult{part: p, errors: evalErrs, err: err}
	}()

	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()
		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.part, res.errors, res.err
	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}

// evaluate runs the source in a fresh sandbox. Sandbox mode keeps user
// code away from the filesystem and syscalls.
func (e *Engine) evaluate(source string) (*feature.PartFile, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return nil, []EvalError{{Message: "source defines no part"}}, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	b := &builder{}
	registerBuiltins(env, b)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if b.part == nil {
		return nil, []EvalError{{Message: "source defines no part"}}, nil
	}
	b.part.Touch()
	return b.part, nil, nil
}

// linePattern matches zygomys messages of the form "Error on line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches the simpler "line N: ..." form.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into EvalError values,
// extracting line numbers from the message where possible.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
