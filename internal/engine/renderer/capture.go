package renderer

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/screenshot"
)

// Capture reads back the default framebuffer's back buffer. Call it after
// drawing and before SwapBuffers.
func (r *Renderer) Capture() (image.Image, error) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) > 0 {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
		gl.ReadBuffer(gl.BACK)
		gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
		gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	}
	return screenshot.FromPixels(pixels, w, h)
}
