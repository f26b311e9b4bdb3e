// Package main runs the shadows example.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples/shadows"
)

func main() {
	if err := examples.Run("Shadows", shadows.New()); err != nil {
		fmt.Fprintf(os.Stderr, "shadows: %v\n", err)
		dialog.Message("%v", err).Title("Shadows example failed").Error()
		os.Exit(1)
	}
}
