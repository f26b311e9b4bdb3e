//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Shadows runs the shadows example with debug logging.
func (Run) Shadows() error {
	return runExample("shadows")
}

// Shapes runs the shapes example with debug logging.
func (Run) Shapes() error {
	return runExample("shapes")
}

// Lighting runs the lighting example with debug logging.
func (Run) Lighting() error {
	return runExample("lighting")
}

// Meshes runs the meshes example with debug logging.
func (Run) Meshes() error {
	return runExample("meshes")
}

func runExample(name string) error {
	fmt.Printf("Run %s...\n", name)
	_, err := executeCmd("go", withArgs("run", "./cmd/"+name, "-debug"), withStream())
	return err
}
