//go:build mage

package main

import (
	"path/filepath"
)

var exampleNames = []string{"shapes", "lighting", "meshes", "shadows"}

// Build builds every example into bin/.
func Build() error {
	return buildExamples()
}

// BuildSimd builds every example with the simd math backend into bin/simd/.
func BuildSimd() error {
	return buildExamples("simd")
}

func buildExamples(tags ...string) error {
	out := "bin"
	if len(tags) > 0 {
		out = filepath.Join(out, joinTags(tags))
	}
	for _, name := range exampleNames {
		args := []string{"build", "-o", filepath.Join(out, name)}
		if len(tags) > 0 {
			args = append(args, "-tags", joinTags(tags))
		}
		args = append(args, "./cmd/"+name)
		if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
			return err
		}
	}
	return nil
}
