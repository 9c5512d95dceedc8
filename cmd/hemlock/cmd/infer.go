package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Schneewolf-Labs/hemlock/internal/ast"
	"github.com/Schneewolf-Labs/hemlock/internal/lexer"
	"github.com/Schneewolf-Labs/hemlock/internal/parser"
	"github.com/Schneewolf-Labs/hemlock/internal/resolver"
	"github.com/Schneewolf-Labs/hemlock/internal/typeinfer"
)

var dumpTypes bool

var inferCmd = &cobra.Command{
	Use:   "infer [file]",
	Short: "Run resolve + type inference over a Hemlock file",
	Long: `Parse, resolve, and run the best-effort type inferer over a
Hemlock program, printing the inferred type of every top-level let/const
binding and every function's inferred return type.

Examples:
  hemlock infer --dump-types script.hml`,
	Args: cobra.MaximumNArgs(1),
	RunE: inferScript,
}

func init() {
	rootCmd.AddCommand(inferCmd)
	inferCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "infer inline code instead of reading from file")
	inferCmd.Flags().BoolVar(&dumpTypes, "dump-types", true, "print inferred types (default: true)")
}

func inferScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("Parse error in %s: %s\n", filename, e)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if errs := resolver.Resolve(program); len(errs) > 0 {
		for _, e := range errs {
			fmt.Println(e.Error())
		}
		return fmt.Errorf("resolver found %d error(s)", len(errs))
	}

	reg := typeinfer.Infer(program)
	if !dumpTypes {
		return nil
	}

	for _, stmt := range program.Statements {
		printBindingType(stmt)
	}
	if len(reg.FuncReturns) > 0 {
		fmt.Println("function return types:")
		for name, t := range reg.FuncReturns {
			fmt.Printf("  %s -> %s\n", name, t)
		}
	}
	return nil
}

func printBindingType(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		fmt.Printf("let %s: %s\n", s.Name, exprType(s.Value))
	case *ast.ConstStatement:
		fmt.Printf("const %s: %s\n", s.Name, exprType(s.Value))
	}
}

func exprType(e ast.Expression) string {
	if e == nil {
		return "unknown"
	}
	if t := e.GetType(); t != nil {
		return t.String()
	}
	return "unknown"
}
