package shadow

import (
	"fmt"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/camera"
	"github.com/farouqadepetu/SecondEngine-sub000/pkg/math"
)

// CubeFace names one face of a point light's shadow cube.
type CubeFace int

const (
	FacePosX CubeFace = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ

	// FaceNone marks a target that is not part of a cube.
	FaceNone CubeFace = -1
)

// CubeFaces lists the faces in cube-map layer order.
var CubeFaces = [6]CubeFace{FacePosX, FaceNegX, FacePosY, FaceNegY, FacePosZ, FaceNegZ}

func (f CubeFace) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FaceNegX:
		return "-X"
	case FacePosY:
		return "+Y"
	case FaceNegY:
		return "-Y"
	case FacePosZ:
		return "+Z"
	case FaceNegZ:
		return "-Z"
	case FaceNone:
		return "none"
	default:
		return fmt.Sprintf("CubeFace(%d)", int(f))
	}
}

// Basis returns the view direction and up vector for the face, following
// the usual cube-map layer conventions.
func (f CubeFace) Basis() (forward, up math.Vec3) {
	switch f {
	case FacePosX:
		return math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0)
	case FaceNegX:
		return math.NewVec3(-1, 0, 0), math.NewVec3(0, 1, 0)
	case FacePosY:
		return math.NewVec3(0, 1, 0), math.NewVec3(0, 0, -1)
	case FaceNegY:
		return math.NewVec3(0, -1, 0), math.NewVec3(0, 0, 1)
	case FacePosZ:
		return math.NewVec3(0, 0, 1), math.NewVec3(0, 1, 0)
	default:
		return math.NewVec3(0, 0, -1), math.NewVec3(0, 1, 0)
	}
}

// PointLightCameras builds one 90 degree perspective camera per cube face,
// all placed at pos.
func PointLightCameras(pos math.Vec3, near, far float32) [6]*camera.Camera {
	var cams [6]*camera.Camera
	for i, face := range CubeFaces {
		forward, up := face.Basis()
		c := camera.New()
		// The face bases are fixed and never degenerate.
		_ = c.LookAt(pos, pos.Add(forward), up)
		c.VFov = 90
		c.AspectRatio = 1
		c.Near = near
		c.Far = far
		c.UpdateViewMatrix()
		c.UpdatePerspectiveProjectionMatrix()
		cams[i] = c
	}
	return cams
}
