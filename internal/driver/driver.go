// Package driver wires the four core passes (spec §2's data flow: AST →
// Resolver → TypeInferer → Evaluator → side effects/exit code) into the
// single pipeline cmd/hemlock's `run` subcommand needs, grounded on the
// teacher's cmd/dwscript/cmd/run.go (lex → parse → semantic analysis →
// interpret, one function per stage, first-error-wins reporting).
package driver

import (
	"fmt"
	"io"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/builtins"
	"github.com/Schneewolf-Labs/hemlock/internal/environment"
	"github.com/Schneewolf-Labs/hemlock/internal/evaluator"
	"github.com/Schneewolf-Labs/hemlock/internal/lexer"
	"github.com/Schneewolf-Labs/hemlock/internal/parser"
	"github.com/Schneewolf-Labs/hemlock/internal/resolver"
	"github.com/Schneewolf-Labs/hemlock/internal/typeinfer"
)

// Options configures a single Run. Stdout/Stderr default to os.Stdout/
// os.Stderr in cmd/hemlock; tests supply buffers instead.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// Trace enables the evaluator's per-call diagnostic line and the
	// builtins registry's time_ms/sleep diagnostics (spec SPEC_FULL.md
	// ambient stack's --trace flag).
	Trace bool

	// DumpAST prints the program tree to Stdout once the resolver and (unless
	// NoInfer is set) the type inferer have run, before evaluation.
	DumpAST bool

	// NoInfer skips the type-inference pass entirely; the evaluator
	// tolerates un-inferred nodes by treating them as UNKNOWN (spec §2).
	NoInfer bool
}

// Result is what the driver observed running a program, independent of how
// cmd/hemlock chooses to report it.
type Result struct {
	ExitCode int
	// TypeRegistry is nil when Options.NoInfer is set.
	TypeRegistry *typeinfer.Registry
	Program      *ast.Program
}

// Run executes source through every pass and returns the process exit code
// (spec §6: "0 on normal completion, 1 on any FATAL"), printing diagnostics
// to opts.Stderr in the `<Category> error: <message>` form along the way.
func Run(filename, source string, opts Options) Result {
	program, ok := parse(filename, source, opts)
	if !ok {
		return Result{ExitCode: 1}
	}

	if errs := resolver.Resolve(program); len(errs) > 0 {
		for _, err := range errs {
			reportFault(opts.Stderr, err)
		}
		return Result{ExitCode: 1, Program: program}
	}

	var reg *typeinfer.Registry
	if !opts.NoInfer {
		reg = typeinfer.Infer(program)
	}

	if opts.DumpAST {
		fmt.Fprintln(opts.Stdout, "AST:")
		fmt.Fprintln(opts.Stdout, program.String())
	}

	ev := &evaluator.Evaluator{}
	table := builtins.New(ev.CallValue)
	table.SetWriter(opts.Stdout)
	table.SetTrace(opts.Trace)
	ev.Builtins = table
	if opts.Trace {
		ev.Trace = opts.Stderr
	}

	env := environment.New()
	if err := ev.EvalProgram(program, env); err != nil {
		reportFault(opts.Stderr, err)
		return Result{ExitCode: 1, TypeRegistry: reg, Program: program}
	}

	return Result{ExitCode: 0, TypeRegistry: reg, Program: program}
}

// parse runs the lexer/parser stage, reporting every parse error it finds
// (there may be several) before returning ok=false.
func parse(filename, source string, opts Options) (*ast.Program, bool) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(opts.Stderr, "Parse error in %s: %s\n", filename, err)
		}
		return nil, false
	}
	return program, true
}

// reportFault prints err in the spec §6 diagnostic form. Every FATAL the
// resolver/evaluator raises is a *herrors.Fault, whose Error() already
// renders as "<Category> error[ at <pos>]: <message>".
func reportFault(w io.Writer, err error) {
	fmt.Fprintln(w, err.Error())
}
