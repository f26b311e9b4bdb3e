// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader is the vertex shader for lit meshes.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader shades meshes with up to eight lights and samples the
// shadow maps of light 0.
//
//go:embed lit.frag
var LitFragmentShader string
