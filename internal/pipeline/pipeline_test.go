package pipeline_test

import (
	"testing"

	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/pipeline"
	"github.com/lacc-lang/lacc/internal/token"
)

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var order []string
	stageA := pipeline.ProcessorFunc{StageName: "a", Fn: func(ctx *pipeline.Context) *pipeline.Context {
		order = append(order, "a")
		return ctx
	}}
	stageB := pipeline.ProcessorFunc{StageName: "b", Fn: func(ctx *pipeline.Context) *pipeline.Context {
		order = append(order, "b")
		return ctx
	}}

	pl := pipeline.New(stageA, stageB)
	ctx := pipeline.NewContext("run-1", "source")
	pl.Run(ctx)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected stages to run in order [a b], got %v", order)
	}
}

func TestContextHasDiagnostics(t *testing.T) {
	ctx := pipeline.NewContext("run-2", "source")
	if ctx.HasDiagnostics() {
		t.Fatal("expected fresh context to have no diagnostics")
	}
	ctx.Diagnostics.Add(diagnostics.SyntaxError, token.Token{Line: 3}, "x")
	if !ctx.HasDiagnostics() {
		t.Fatal("expected context to report diagnostics after Add")
	}
}
