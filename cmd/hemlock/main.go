// Command hemlock is the Hemlock language interpreter's CLI entry point.
package main

import (
	"os"

	"github.com/Schneewolf-Labs/hemlock/cmd/hemlock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
