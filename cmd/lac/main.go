// Command lac is the LAC compiler driver: it reads an LA source file,
// runs it through the lex/parse/analyze/codegen pipeline, and writes
// either the generated C translation unit or the accumulated diagnostics
// to the output path.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/lacc-lang/lacc/internal/analyzer"
	"github.com/lacc-lang/lacc/internal/cache"
	"github.com/lacc-lang/lacc/internal/codegen"
	"github.com/lacc-lang/lacc/internal/emitter"
	"github.com/lacc-lang/lacc/internal/errlisten"
	"github.com/lacc-lang/lacc/internal/hostcc"
	"github.com/lacc-lang/lacc/internal/lexer"
	"github.com/lacc-lang/lacc/internal/parser"
	"github.com/lacc-lang/lacc/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run contains the whole driver so a deferred recover() can collapse any
// unexpected panic to the "Erro durante a compilacao" output path instead
// of letting the process crash with a Go stack trace.
func run(args []string) (exitCode int) {
	fs := flag.NewFlagSet("lac", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "print diagnostics to stderr once compilation finishes")
	stats := fs.Bool("stats", false, "print a summary of compilation size and timing")
	useCache := fs.String("cache", "", "path to a build-result cache database")
	noCC := fs.Bool("no-cc", false, "skip invoking the host C compiler even when available")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	positional := fs.Args()
	if len(positional) != 2 {
		fmt.Fprintln(os.Stderr, "usage: lac [flags] <input.la> <output.c>")
		return 1
	}
	inputPath, outputPath := positional[0], positional[1]

	runID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			if err := emitter.WriteInternalError(outputPath, fmt.Errorf("%v", r)); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			exitCode = 0
		}
	}()

	start := time.Now()

	source, err := os.ReadFile(inputPath)
	if err != nil {
		if werr := emitter.WriteInternalError(outputPath, err); werr != nil {
			fmt.Fprintln(os.Stderr, werr)
		}
		return 0
	}

	var store *cache.Store
	var cacheKey string
	if *useCache != "" {
		store, err = cache.Open(*useCache)
		if err == nil {
			defer store.Close()
			cacheKey = cache.Key(string(source))
			if hit, ok, lookupErr := store.Lookup(cacheKey); lookupErr == nil && ok {
				if *verbose {
					fmt.Fprintf(os.Stderr, "cache hit for run %s (original run %s)\n", runID, hit.RunID)
				}
				if err := os.WriteFile(outputPath, []byte(hit.Output), 0o644); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				return 0
			}
		}
	}

	ctx := pipeline.NewContext(runID, string(source))
	pl := buildPipeline(*noCC, outputPath)
	ctx = pl.Run(ctx)

	colored := *verbose && isatty.IsTerminal(os.Stderr.Fd())
	if *verbose {
		for _, d := range ctx.Diagnostics.All() {
			if colored {
				fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", d.Error())
			} else {
				fmt.Fprintln(os.Stderr, d.Error())
			}
		}
	}

	if store != nil && cacheKey != "" {
		res := cache.Result{RunID: runID, Output: ctx.Output, IsError: ctx.OutputIsError}
		if err := store.Store(cacheKey, res); err != nil && *verbose {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if *stats {
		elapsed := time.Since(start)
		fmt.Fprintf(os.Stderr, "lac: %s source, %s output, %s (run %s)\n",
			humanize.Bytes(uint64(len(source))),
			humanize.Bytes(uint64(len(ctx.Output))),
			elapsed.Round(time.Millisecond),
			runID,
		)
	}

	return 0
}

// buildPipeline wires the lexer, parser, error listener, analyzer, and
// code generator into a pipeline.Pipeline. The host C compiler is invoked
// as a side effect of the final stage when the output path ends in .c and
// generation succeeded.
func buildPipeline(noCC bool, outputPath string) *pipeline.Pipeline {
	parseStage := pipeline.ProcessorFunc{
		StageName: "parse",
		Fn: func(ctx *pipeline.Context) *pipeline.Context {
			listener := errlisten.New(ctx.Diagnostics)
			l := lexer.New(ctx.Source)
			p := parser.New(l, listener)
			ctx.Program = p.ParseProgram()
			return ctx
		},
	}

	analyzeStage := pipeline.ProcessorFunc{
		StageName: "analyze",
		Fn: func(ctx *pipeline.Context) *pipeline.Context {
			a := analyzer.New(ctx.Diagnostics)
			a.Analyze(ctx.Program)
			ctx.Symbols = a.Symbols
			ctx.Types = a.Types
			return ctx
		},
	}

	codegenStage := pipeline.ProcessorFunc{
		StageName: "codegen",
		Fn: func(ctx *pipeline.Context) *pipeline.Context {
			if ctx.HasDiagnostics() {
				return ctx
			}
			g := codegen.New(ctx.Symbols, ctx.Types)
			ctx.Output = g.Generate(ctx.Program)
			return ctx
		},
	}

	emitStage := pipeline.ProcessorFunc{
		StageName: "emit",
		Fn: func(ctx *pipeline.Context) *pipeline.Context {
			var err error
			if ctx.HasDiagnostics() {
				ctx.Output = emitter.DiagnosticsText(ctx.Diagnostics)
				ctx.OutputIsError = true
				err = emitter.WriteDiagnostics(outputPath, ctx.Diagnostics)
			} else {
				err = emitter.WriteSuccess(outputPath, ctx.Output)
				if err == nil && !noCC && strings.HasSuffix(outputPath, ".c") && hostcc.Available() {
					out := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".out"
					if ccErr := hostcc.Compile(outputPath, out); ccErr != nil {
						ctx.Output = emitter.HostCompilerErrorText(ccErr)
						ctx.OutputIsError = true
						err = emitter.WriteHostCompilerError(outputPath, ccErr)
					}
				}
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			return ctx
		},
	}

	return pipeline.New(parseStage, analyzeStage, codegenStage, emitStage)
}
