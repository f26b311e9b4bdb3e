// Package shader compiles GLSL programs and uploads uniforms.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage names a pipeline stage in compile errors.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
	StageLink     Stage = "link"
)

// CompileError carries the driver's info log for a failed stage.
type CompileError struct {
	Program string
	Stage   Stage
	Log     string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader %s: %s: %s", e.Program, e.Stage, cleanLog(e.Log))
}

// cleanLog trims the NUL terminator and trailing whitespace GL leaves in
// info logs.
func cleanLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	return strings.TrimSpace(log)
}

// Program is a linked GL program with cached uniform locations.
type Program struct {
	ID   uint32
	Name string

	uniforms map[string]int32
}

// Compile builds a program from vertex and fragment sources. name only
// labels errors and logs.
func Compile(name, vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileStage(name, StageVertex, gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(name, StageFragment, gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(id, logLen, nil, &log[0])
		gl.DeleteProgram(id)
		return nil, &CompileError{Program: name, Stage: StageLink, Log: string(log)}
	}

	return &Program{ID: id, Name: name, uniforms: make(map[string]int32)}, nil
}

func compileStage(program string, stage Stage, kind uint32, source string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(sh, logLen, nil, &log[0])
		gl.DeleteShader(sh)
		return 0, &CompileError{Program: program, Stage: stage, Log: string(log)}
	}
	return sh, nil
}

// Uniform returns the location of name, or -1 if the program has no
// active uniform by that name. Lookups are cached.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// MustUniform is Uniform for uniforms the program cannot work without.
// It panics when name is missing or optimised away.
func (p *Program) MustUniform(name string) int32 {
	loc := p.Uniform(name)
	if loc < 0 {
		panic(fmt.Sprintf("uniform %q not found in program %s", name, p.Name))
	}
	return loc
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
