// Package scene renders lit meshes with optional shadows from the first
// light. Every example program draws through it.
package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/camera"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/lighting"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/renderer"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/scene/shaders"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shader"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shadow"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shapes"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// MaxShadowMaps is the number of shadow samplers the lit shader declares.
const MaxShadowMaps = 6

// ShadowMode selects how the lit shader samples shadow maps.
type ShadowMode int32

const (
	ShadowNone ShadowMode = iota
	ShadowDirectional
	ShadowPoint
)

// ShadowModeFor returns the mode matching a shadow-casting light type.
func ShadowModeFor(t lighting.Type) ShadowMode {
	switch t {
	case lighting.Directional:
		return ShadowDirectional
	case lighting.Point:
		return ShadowPoint
	default:
		return ShadowNone
	}
}

// Config contains scene configuration options.
type Config struct {
	Ambient    float32
	ShadowBias float32
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Ambient:    0.1,
		ShadowBias: 0.005,
	}
}

// Object is a mesh placed in the scene.
type Object struct {
	Mesh  *renderer.Mesh
	Color math.Vec3

	local shapes.AABB
}

// World returns the object's model matrix.
func (o *Object) World() math.Mat4 { return o.Mesh.World() }

// SetWorld moves the object.
func (o *Object) SetWorld(w math.Mat4) { o.Mesh.SetWorld(w) }

// Bounds returns the object's bounds in world space.
func (o *Object) Bounds() shapes.AABB { return o.local.Transform(o.Mesh.World()) }

// Draw implements shadow.Drawable.
func (o *Object) Draw() { o.Mesh.Draw() }

// Scene owns the lit program and the objects drawn with it.
type Scene struct {
	config  Config
	log     *zap.Logger
	program *shader.Program
	objects []*Object

	locModel      int32
	locViewProj   int32
	locColor      int32
	locCameraPos  int32
	locAmbient    int32
	locLightCount int32
	locLights     int32
	locShadowMode int32
	locShadowBias int32
	locLightSpace int32
	locShadowMaps int32
}

// New compiles the lit program. It needs a current GL context.
func New(cfg Config) (*Scene, error) {
	program, err := shader.Compile("lit", shaders.LitVertexShader, shaders.LitFragmentShader)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		config:  cfg,
		log:     logger.Named("scene"),
		program: program,
	}
	s.locModel = program.MustUniform("uModel")
	s.locViewProj = program.MustUniform("uViewProj")
	s.locColor = program.MustUniform("uColor")
	s.locCameraPos = program.Uniform("uCameraPos")
	s.locAmbient = program.Uniform("uAmbient")
	s.locLightCount = program.Uniform("uLightCount")
	s.locLights = program.Uniform("uLights")
	s.locShadowMode = program.Uniform("uShadowMode")
	s.locShadowBias = program.Uniform("uShadowBias")
	s.locLightSpace = program.Uniform("uLightSpace")
	s.locShadowMaps = program.Uniform("uShadowMaps")

	// Samplers never move, so bind them to their units once.
	program.Use()
	units := make([]int32, MaxShadowMaps)
	for i := range units {
		units[i] = renderer.ShadowTextureUnit + int32(i)
	}
	if s.locShadowMaps >= 0 {
		gl.Uniform1iv(s.locShadowMaps, MaxShadowMaps, &units[0])
	}
	gl.UseProgram(0)

	return s, nil
}

// Config returns the scene configuration.
func (s *Scene) Config() Config { return s.config }

// SetAmbient changes the ambient term.
func (s *Scene) SetAmbient(a float32) { s.config.Ambient = a }

// Add uploads shape and places it at world.
func (s *Scene) Add(shape *shapes.Shape, world math.Mat4, color math.Vec3) (*Object, error) {
	mesh, err := renderer.NewMesh(shape)
	if err != nil {
		return nil, err
	}
	mesh.SetWorld(world)
	o := &Object{Mesh: mesh, Color: color, local: shape.Bounds()}
	s.objects = append(s.objects, o)
	s.log.Debug("object added",
		zap.String("shape", shape.Name),
		zap.Int("vertices", len(shape.Vertices)))
	return o, nil
}

// Objects returns the scene's objects in insertion order.
func (s *Scene) Objects() []*Object { return s.objects }

// Bounds returns the union of every object's world bounds.
func (s *Scene) Bounds() shapes.AABB {
	if len(s.objects) == 0 {
		return shapes.AABB{}
	}
	b := s.objects[0].Bounds()
	for _, o := range s.objects[1:] {
		b = b.Union(o.Bounds())
	}
	return b
}

// Drawables returns the objects as shadow casters.
func (s *Scene) Drawables() []shadow.Drawable {
	out := make([]shadow.Drawable, len(s.objects))
	for i, o := range s.objects {
		out[i] = o
	}
	return out
}

// Render draws every object lit by lights. lightSpace holds one matrix per
// shadow map bound by the shadow pass; it is ignored when mode is
// ShadowNone.
func (s *Scene) Render(cam *camera.Camera, lights *lighting.Buffer, mode ShadowMode, lightSpace []math.Mat4) {
	s.program.Use()

	shader.SetMat4(s.locViewProj, cam.ViewProjection())
	shader.SetVec3(s.locCameraPos, cam.Position())
	shader.SetFloat(s.locAmbient, s.config.Ambient)
	shader.SetFloat(s.locShadowBias, s.config.ShadowBias)

	count := 0
	if lights != nil {
		count = lights.Count()
		shader.SetVec4Array(s.locLights, lights.Uniforms())
	}
	shader.SetInt(s.locLightCount, int32(count))

	if count == 0 || len(lightSpace) == 0 {
		mode = ShadowNone
	}
	if len(lightSpace) > MaxShadowMaps {
		lightSpace = lightSpace[:MaxShadowMaps]
	}
	shader.SetInt(s.locShadowMode, int32(mode))
	if mode != ShadowNone {
		shader.SetMat4Array(s.locLightSpace, lightSpace)
	}

	for _, o := range s.objects {
		shader.SetMat4(s.locModel, o.Mesh.World())
		shader.SetVec3(s.locColor, o.Color)
		o.Mesh.Draw()
	}

	gl.UseProgram(0)
}

// Destroy releases the program and every mesh.
func (s *Scene) Destroy() {
	for _, o := range s.objects {
		o.Mesh.Delete()
	}
	s.objects = nil
	s.program.Delete()
}
