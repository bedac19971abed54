package render

import (
	"math"

	"github.com/gliderman/3D-Maze-Game/pkg/math3d"
)

// Camera describes the viewpoint for a frame.
//
// Rotation is in degrees: yaw (look left/right) in .Z, pitch (look up/down)
// in .Y. The .X component is unused by rendering. Yaw of any magnitude works
// and wraps to (-180, 180]; pitch is not wrapped and degenerates near ±90°.
// Fields of view are in degrees.
type Camera struct {
	Location math3d.Vec3
	Rotation math3d.Vec3

	FOVHorizontal float64
	FOVVertical   float64
}

// wrapDegrees wraps an angle into the (-180, 180] range (180 itself maps to
// -180, which is indistinguishable through cos/sin), folding symmetrically
// for negative inputs.
func wrapDegrees(deg float64) float64 {
	mag := deg
	if deg < 0 {
		mag = -mag
	}
	wrapped := math.Mod(mag+180, 360) - 180
	if deg < 0 {
		return -wrapped
	}
	return wrapped
}

// yaw returns the wrapped horizontal look angle in radians.
func (c *Camera) yaw() float64 {
	return wrapDegrees(c.Rotation.Z) * (math.Pi / 180)
}

// pitch returns the vertical look angle in radians, unwrapped.
func (c *Camera) pitch() float64 {
	return c.Rotation.Y * (math.Pi / 180)
}

// direction returns the camera's forward vector, used only for the
// visibility test (projection works on angles directly). The z component is
// tan(pitch) while |pitch| < 90° and clamps to ±10000 beyond, keeping the
// vector finite and strongly signed at vertical look angles. The clamp is a
// deliberate approximation, not a placeholder.
func (c *Camera) direction() math3d.Vec3 {
	yaw := c.yaw()
	z := 0.0
	switch {
	case c.Rotation.Y >= 90:
		z = 10000
	case c.Rotation.Y <= -90:
		z = -10000
	default:
		z = math.Tan(c.pitch())
	}
	return math3d.V3(math.Cos(yaw), math.Sin(yaw), z)
}
