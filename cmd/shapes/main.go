// Package main runs the shapes example.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples/shapes"
)

func main() {
	if err := examples.Run("Shapes", shapes.New()); err != nil {
		fmt.Fprintf(os.Stderr, "shapes: %v\n", err)
		dialog.Message("%v", err).Title("Shapes example failed").Error()
		os.Exit(1)
	}
}
