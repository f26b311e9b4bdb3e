package shader

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileErrorMessage(t *testing.T) {
	err := error(&CompileError{
		Program: "lit",
		Stage:   StageFragment,
		Log:     "0:12(3): error: `uColr' undeclared\n\x00\x00",
	})
	want := "shader lit: fragment: 0:12(3): error: `uColr' undeclared"
	if got := err.Error(); got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}

	var ce *CompileError
	if !errors.As(err, &ce) || ce.Stage != StageFragment {
		t.Errorf("errors.As: got %v", ce)
	}
}

func TestCleanLog(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"ok\x00garbage", "ok"},
		{"  line one\nline two \n", "line one\nline two"},
	}
	for _, tt := range tests {
		if got := cleanLog(tt.in); got != tt.want {
			t.Errorf("cleanLog(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
	if strings.Contains(cleanLog("a\x00b"), "b") {
		t.Error("cleanLog kept text after NUL")
	}
}
