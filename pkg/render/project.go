package render

import (
	"math"

	"github.com/gliderman/3D-Maze-Game/pkg/math3d"
)

// pointToScreen converts a camera-relative offset into screen coordinates.
// yaw and pitch are the camera look angles in radians, angleH/angleV the
// angular resolution per pixel, halfW/halfH the framebuffer half-extents.
//
// The horizontal angle wraps once into (-pi, pi] so geometry behind the
// camera lands far off one screen edge instead of at an unbounded
// coordinate. The vertical angle is not wrapped; the caller bounds pitch.
func pointToScreen(delta math3d.Vec3, yaw, pitch, angleH, angleV, halfW, halfH float64) math3d.Point {
	var horizontal float64
	if delta.X == 0 && delta.Y == 0 {
		// Camera is exactly at the point horizontally.
		horizontal = 0
	} else {
		horizontal = math.Atan2(delta.Y, delta.X) - yaw
	}
	if horizontal <= -math.Pi {
		horizontal += 2 * math.Pi
	} else if horizontal > math.Pi {
		horizontal -= 2 * math.Pi
	}

	var vertical float64
	if delta.X == 0 && delta.Y == 0 && delta.Z == 0 {
		vertical = 0
	} else {
		vertical = math.Atan2(delta.Z, math.Sqrt(delta.X*delta.X+delta.Y*delta.Y)) - pitch
	}

	return math3d.Point{
		X: halfW - horizontal/angleH,
		Y: halfH - vertical/angleV,
	}
}
