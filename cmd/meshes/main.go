// Package main runs the meshes example.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/examples/meshes"
)

func main() {
	if err := examples.Run("Meshes", meshes.New()); err != nil {
		fmt.Fprintf(os.Stderr, "meshes: %v\n", err)
		dialog.Message("%v", err).Title("Meshes example failed").Error()
		os.Exit(1)
	}
}
