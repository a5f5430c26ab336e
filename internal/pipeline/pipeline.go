package pipeline

// Pipeline runs a fixed sequence of Processors over one Context. Later
// stages are free to look at ctx.Diagnostics and no-op (the code generator
// does exactly this), so the Pipeline itself never short-circuits —
// stopping early is each stage's own decision.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline from stages in run order.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes every stage in order, threading ctx through each.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
