// Package pipeline chains the compiler's stages over one shared, mutable
// Context threaded through each stage's Process call.
package pipeline

import (
	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/latype"
	"github.com/lacc-lang/lacc/internal/symbols"
)

// Context carries everything one compilation run accumulates as it moves
// through the pipeline: source text, the parsed tree, resolved symbol and
// type tables, diagnostics, and finally the generated output.
type Context struct {
	RunID  string
	Source string

	Program *ast.Program

	Symbols *symbols.Table
	Types   map[string]latype.Type

	Diagnostics *diagnostics.Collector

	// Output is the exact text written to the destination path: the C
	// translation unit on success, or the diagnostic/host-compiler failure
	// rendering otherwise. OutputIsError distinguishes the two so callers
	// that replay Output (the build cache) reproduce the run's real
	// outcome.
	Output        string
	OutputIsError bool
}

// NewContext creates a Context for compiling source, stamped with runID
// for log/diagnostic correlation.
func NewContext(runID, source string) *Context {
	return &Context{
		RunID:       runID,
		Source:      source,
		Diagnostics: diagnostics.New(),
	}
}

// HasDiagnostics reports whether any stage has recorded a diagnostic.
func (c *Context) HasDiagnostics() bool {
	return !c.Diagnostics.Empty()
}
