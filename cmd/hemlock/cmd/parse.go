package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Schneewolf-Labs/hemlock/internal/lexer"
	"github.com/Schneewolf-Labs/hemlock/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Hemlock file and print its AST",
	Long: `Parse a Hemlock program and print the resulting AST, without
running the resolver, the type inferer, or the evaluator.

Examples:
  hemlock parse script.hml
  hemlock parse -e "let x = 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
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

	fmt.Println(program.String())
	return nil
}
