// Package shaders provides the renderer's built-in GLSL sources.
package shaders

import _ "embed"

// DepthVertexShader transforms positions into light space.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader writes depth only.
//
//go:embed depth.frag
var DepthFragmentShader string
