package main

import (
	"fmt"
	"os"

	"github.com/bnema/cursorlock/cmd"
	"github.com/bnema/cursorlock/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(1)
	}
}
