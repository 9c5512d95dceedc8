package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hemlock",
	Short: "Hemlock language interpreter",
	Long: `hemlock is a tree-walking interpreter for the Hemlock scripting language.

Hemlock is a small, dynamically-typed language with a resolver pass
(lexical scope flattening), a best-effort type inferer, and a single
evaluator core operating over a refcounted Value union.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

// colorEnabled reports whether diagnostic output should be colored: only
// when stderr is an interactive terminal (spec SPEC_FULL.md's domain-stack
// wiring for go-isatty — never color output that's piped or redirected).
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func exitWithError(msg string, args ...any) {
	prefix := "Error: "
	if colorEnabled() {
		prefix = "\x1b[31mError:\x1b[0m "
	}
	fmt.Fprintf(os.Stderr, prefix+msg+"\n", args...)
	os.Exit(1)
}
