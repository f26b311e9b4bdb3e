package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/renderer/shaders"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shader"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/shadow"
	"github.com/farouqadepetu/SecondEngine-sub000/internal/logger"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// ShadowTextureUnit is the first texture unit BindForSampling uses.
const ShadowTextureUnit = 4

// depthMap is a framebuffer with a depth-only texture attachment.
type depthMap struct {
	fbo        uint32
	texture    uint32
	resolution int32
}

// ShadowDevice implements shadow.Device with OpenGL depth framebuffers.
type ShadowDevice struct {
	program      *shader.Program
	locModel     int32
	locViewProj  int32
	maps         map[shadow.Handle]*depthMap
	next         shadow.Handle
	active       *depthMap
	prevViewport [4]int32 // Saved viewport for restore
	log          *zap.Logger
}

var _ shadow.Device = (*ShadowDevice)(nil)

// NewShadowDevice compiles the depth program.
func NewShadowDevice() (*ShadowDevice, error) {
	program, err := shader.Compile("depth", shaders.DepthVertexShader, shaders.DepthFragmentShader)
	if err != nil {
		return nil, err
	}
	return &ShadowDevice{
		program:     program,
		locModel:    program.MustUniform("uModel"),
		locViewProj: program.MustUniform("uLightViewProj"),
		maps:        make(map[shadow.Handle]*depthMap),
		log:         logger.Named("shadow-gl"),
	}, nil
}

// CreateDepthTarget allocates a square depth texture and its framebuffer.
func (d *ShadowDevice) CreateDepthTarget(resolution int32) (shadow.Handle, error) {
	m := &depthMap{resolution: resolution}

	gl.GenFramebuffers(1, &m.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, m.fbo)

	gl.GenTextures(1, &m.texture)
	gl.BindTexture(gl.TEXTURE_2D, m.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, resolution, resolution, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Clamp to border with white (1.0) to avoid shadow outside frustum
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	borderColor := []float32{1.0, 1.0, 1.0, 1.0}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])

	// Comparison sampling for sampler2DShadow
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, m.texture, 0)

	// No color buffer for shadow pass
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		m.delete()
		return 0, fmt.Errorf("depth framebuffer incomplete: 0x%x", status)
	}

	d.next++
	d.maps[d.next] = m
	return d.next, nil
}

// DestroyDepthTarget releases the target's framebuffer and texture.
func (d *ShadowDevice) DestroyDepthTarget(h shadow.Handle) {
	if m, ok := d.maps[h]; ok {
		m.delete()
		delete(d.maps, h)
	}
}

// BeginDepthPass binds the target and prepares depth-only rendering.
func (d *ShadowDevice) BeginDepthPass(h shadow.Handle, viewProj math.Mat4) {
	m, ok := d.maps[h]
	if !ok {
		d.log.Error("unknown depth target", zap.Uint32("handle", uint32(h)))
		return
	}
	d.active = m

	// Save current viewport for restore
	gl.GetIntegerv(gl.VIEWPORT, &d.prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, m.fbo)
	gl.Viewport(0, 0, m.resolution, m.resolution)
	gl.Clear(gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Front-face culling reduces shadow acne
	gl.CullFace(gl.FRONT)

	d.program.Use()
	shader.SetMat4(d.locViewProj, viewProj)
}

// DrawDepth draws one drawable with its world matrix.
func (d *ShadowDevice) DrawDepth(dr shadow.Drawable) {
	if d.active == nil {
		return
	}
	shader.SetMat4(d.locModel, dr.World())
	dr.Draw()
}

// EndDepthPass restores the default framebuffer, viewport and culling.
func (d *ShadowDevice) EndDepthPass() {
	d.active = nil
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(d.prevViewport[0], d.prevViewport[1], d.prevViewport[2], d.prevViewport[3])
	gl.CullFace(gl.BACK)
}

// TransitionTarget makes depth writes visible to sampling, or detaches the
// texture from sampling units before it is written again. GL tracks image
// layouts itself, so only bindings change.
func (d *ShadowDevice) TransitionTarget(h shadow.Handle, from, to shadow.TargetState) {
	m, ok := d.maps[h]
	if !ok {
		return
	}
	if to == shadow.DepthWrite {
		for unit := uint32(0); unit < uint32(len(d.maps)); unit++ {
			gl.ActiveTexture(gl.TEXTURE0 + ShadowTextureUnit + unit)
			gl.BindTexture(gl.TEXTURE_2D, 0)
		}
		gl.ActiveTexture(gl.TEXTURE0)
	}
	d.log.Debug("target transition",
		zap.Uint32("texture", m.texture),
		zap.Stringer("from", from),
		zap.Stringer("to", to))
}

// BindForSampling binds the targets to consecutive units starting at
// ShadowTextureUnit.
func (d *ShadowDevice) BindForSampling(hs []shadow.Handle) {
	for i, h := range hs {
		m, ok := d.maps[h]
		if !ok {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + ShadowTextureUnit + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, m.texture)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// Close releases every target and the depth program.
func (d *ShadowDevice) Close() {
	for h := range d.maps {
		d.DestroyDepthTarget(h)
	}
	d.program.Delete()
}

func (m *depthMap) delete() {
	if m.fbo != 0 {
		gl.DeleteFramebuffers(1, &m.fbo)
		m.fbo = 0
	}
	if m.texture != 0 {
		gl.DeleteTextures(1, &m.texture)
		m.texture = 0
	}
}
