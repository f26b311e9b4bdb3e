package math_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Every exported function and method of the backends and the camera
// carries a doc comment.
func TestExportedFuncsDocumented(t *testing.T) {
	dirs := []string{"scalar", "simd", filepath.Join("..", "..", "internal", "engine", "camera")}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		fset := token.NewFileSet()
		for _, e := range entries {
			name := e.Name()
			if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
			if err != nil {
				t.Fatal(err)
			}
			for _, decl := range f.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || !fn.Name.IsExported() || fn.Doc != nil {
					continue
				}
				if fn.Recv != nil && (fn.Name.Name == "String" || fn.Name.Name == "Error") {
					continue
				}
				t.Errorf("%s: %s has no doc comment", fset.Position(fn.Pos()), fn.Name.Name)
			}
		}
	}
}
