package lighting

// MaxLights is the maximum number of lights supported in shaders.
const MaxLights = 8

// Buffer holds lights for GPU upload.
type Buffer struct {
	Lights []Light
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Lights: make([]Light, 0, MaxLights),
	}
}

// Count returns the number of lights in the buffer.
func (b *Buffer) Count() int {
	return len(b.Lights)
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
}

// Add adds a light to the buffer.
// Returns false if buffer is full.
func (b *Buffer) Add(l Light) bool {
	if len(b.Lights) >= MaxLights {
		return false
	}
	b.Lights = append(b.Lights, l)
	return true
}

// Set replaces all lights in the buffer.
// Truncates to MaxLights if necessary.
func (b *Buffer) Set(lights []Light) {
	b.Clear()
	count := min(len(lights), MaxLights)
	b.Lights = append(b.Lights, lights[:count]...)
}

// Uniforms returns every light packed with Light.Uniform, padded to
// MaxLights entries.
// Format: [light0 (16 floats), light1, ...]
func (b *Buffer) Uniforms() []float32 {
	result := make([]float32, MaxLights*UniformSize)
	for i, l := range b.Lights {
		u := l.Uniform()
		copy(result[i*UniformSize:], u[:])
	}
	return result
}
