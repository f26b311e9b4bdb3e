// Package main runs the lighting example.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples/lighting"
)

func main() {
	if err := examples.Run("Lighting", lighting.New()); err != nil {
		fmt.Fprintf(os.Stderr, "lighting: %v\n", err)
		dialog.Message("%v", err).Title("Lighting example failed").Error()
		os.Exit(1)
	}
}
