//go:build mage

package main

import (
	"fmt"
	"strings"
)

// Test runs every test against the scalar backend, then the simd one.
func Test() error {
	for _, tags := range [][]string{nil, {"simd"}} {
		if err := goTest(tags...); err != nil {
			return err
		}
	}
	return nil
}

// TestDebug runs the tests with runtime assertions enabled on both backends.
func TestDebug() error {
	for _, tags := range [][]string{{"debug"}, {"debug", "simd"}} {
		if err := goTest(tags...); err != nil {
			return err
		}
	}
	return nil
}

// Bench runs the math benchmarks on both backends.
func Bench() error {
	for _, tags := range []string{"", "simd"} {
		args := []string{"test", "-run", "^$", "-bench", ".", "./pkg/math/..."}
		if tags != "" {
			args = append(args, "-tags", tags)
		}
		if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
			return err
		}
	}
	return nil
}

func goTest(tags ...string) error {
	args := []string{"test", "./..."}
	if len(tags) > 0 {
		args = append(args, "-tags", joinTags(tags))
	}
	fmt.Printf("Testing with tags %v\n", tags)
	_, err := executeCmd("go", withArgs(args...), withStream())
	return err
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}
