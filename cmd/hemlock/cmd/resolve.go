package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Schneewolf-Labs/hemlock/internal/lexer"
	"github.com/Schneewolf-Labs/hemlock/internal/parser"
	"github.com/Schneewolf-Labs/hemlock/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Run the resolver pass over a Hemlock file",
	Long: `Parse a Hemlock program and run the resolver pass (lexical scope
flattening and redeclaration checking) without type inference or
evaluation, printing any resolve-time errors it finds.

Examples:
  hemlock resolve script.hml
  hemlock resolve -e "let x = 1; let x = 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: resolveScript,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "resolve inline code instead of reading from file")
}

func resolveScript(_ *cobra.Command, args []string) error {
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

	errs := resolver.Resolve(program)
	if len(errs) == 0 {
		fmt.Println("resolved OK")
		return nil
	}
	for _, e := range errs {
		fmt.Println(e.Error())
	}
	return fmt.Errorf("resolver found %d error(s)", len(errs))
}
