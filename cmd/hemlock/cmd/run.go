package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Schneewolf-Labs/hemlock/internal/driver"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
	noInfer  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Hemlock script",
	Long: `Execute a Hemlock program from a file or an inline expression.

Examples:
  # Run a script file
  hemlock run script.hml

  # Evaluate inline code
  hemlock run -e "let a = 1; let b = 2; print(a + b);"

  # Run with an AST dump (for debugging)
  hemlock run --dump-ast script.hml

  # Run with the per-call trace diagnostic
  hemlock run --trace script.hml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace user-function calls to stderr")
	runCmd.Flags().BoolVar(&noInfer, "no-infer", false, "skip the type-inference pass")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	if trace && colorEnabled() {
		fmt.Fprintf(os.Stderr, "\x1b[2m[trace mode enabled - executing %s]\x1b[0m\n", filename)
	} else if trace {
		fmt.Fprintf(os.Stderr, "[trace mode enabled - executing %s]\n", filename)
	}

	result := driver.Run(filename, input, driver.Options{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Trace:   trace,
		DumpAST: dumpAST,
		NoInfer: noInfer,
	})

	if result.ExitCode != 0 {
		os.Exit(result.ExitCode)
	}
	return nil
}

// readSource determines a command's input text and display name from the
// shared -e/--eval flag or a single positional file argument, the same
// precedence every hemlock subcommand uses (eval wins, then file, then
// neither is an error).
func readSource(eval string, args []string) (input, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
