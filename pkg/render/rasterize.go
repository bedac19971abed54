package render

import (
	"math"

	"github.com/gliderman/3D-Maze-Game/pkg/math3d"
)

// The scanline rasterizer fills one projected triangle by sweeping vertical
// columns between two interpolated edges. Which sweep runs depends on how the
// three screen-space x coordinates relate:
//
//   - all three equal: the triangle is edge-on and degenerates to one column;
//   - exactly two equal: a right-triangle shape with one vertical base edge,
//     swept from the base toward the lone apex;
//   - all distinct: two sweeps, left vertex to center and center to right,
//     both bounded below by the long left-right edge.
//
// Columns resample to pixel centers (floor(x)+0.5) after the first paint so
// adjacent spans meet without seams, and every column paints one extra pixel
// at its bottom bound to cover truncation loss.

// classifyVertices assigns the three projected vertices their horizontal
// roles. Ties are broken by vertex order: p1 is preferred for left, p3 for
// right, and the leftover vertex is the center. The preference order matters
// on axis-aligned triangles and must not change, or identical scenes
// rasterize differently.
func classifyVertices(p1, p2, p3 math3d.Point) (left, center, right math3d.Point) {
	pts := [3]math3d.Point{p1, p2, p3}

	leftIdx := 0
	if pts[leftIdx].X > pts[1].X {
		leftIdx = 1
	}
	if pts[leftIdx].X > pts[2].X {
		leftIdx = 2
	}

	rightIdx := 2
	if (pts[rightIdx].X < pts[1].X || leftIdx == 2) && leftIdx != 1 {
		rightIdx = 1
	}
	if pts[rightIdx].X < pts[0].X && leftIdx != 0 {
		rightIdx = 0
	}

	centerIdx := 3 - leftIdx - rightIdx
	return pts[leftIdx], pts[centerIdx], pts[rightIdx]
}

// edgeSlope returns the slope of the edge from b toward a, flagging vertical
// edges instead of dividing by zero. The case dispatch keeps vertical edges
// out of the sweeps, so the flag only trips for inputs that bypass rasterize.
func edgeSlope(a, b math3d.Point) (slope float64, vertical bool) {
	dx := a.X - b.X
	if dx == 0 {
		return 0, true
	}
	return (a.Y - b.Y) / dx, false
}

// fillSpan paints the column at x from topY down through bottomY. The loop is
// strict so the final paint lands exactly on bottomY, closing the gap that
// truncation would otherwise leave between stacked spans.
func fillSpan(fb *Framebuffer, x, topY, bottomY float64, c Color) {
	for y := topY; y > bottomY; y-- {
		fb.PaintF(x, y, c)
	}
	fb.PaintF(x, bottomY, c)
}

// fillColumn paints the single column of an edge-on triangle, from the
// highest of the three y values down to (exclusive) the lowest.
func fillColumn(fb *Framebuffer, x, y1, y2, y3 float64, c Color) {
	max := y1
	if max < y2 {
		max = y2
	}
	if max < y3 {
		max = y3
	}
	min := y1
	if min > y2 {
		min = y2
	}
	if min > y3 {
		min = y3
	}
	for y := max; y > min; y-- {
		fb.PaintF(x, y, c)
	}
}

// snapToPixelCenter moves a sweep coordinate onto the center of its pixel
// column so subsequent columns sample consistently.
func snapToPixelCenter(x float64) float64 {
	if x-math.Floor(x) != 0.5 {
		return math.Floor(x) + 0.5
	}
	return x
}

// rasterize fills one projected triangle into the framebuffer.
func rasterize(fb *Framebuffer, p1, p2, p3 math3d.Point, c Color) {
	left, center, right := classifyVertices(p1, p2, p3)

	switch {
	case left.X == center.X && center.X == right.X:
		// Edge-on: a single vertical segment.
		if center.X < 0 || center.X >= float64(fb.Width) {
			return
		}
		fillColumn(fb, center.X, p1.Y, p2.Y, p3.Y, c)

	case left.X == center.X || center.X == right.X:
		rasterizeVerticalBase(fb, left, center, right, c)

	default:
		rasterizeGeneral(fb, left, center, right, c)
	}
}

// rasterizeVerticalBase handles the two-vertices-share-a-column shape: a
// vertical base edge and a lone apex to one side. The sweep runs from the
// base toward the apex, bounded by the apex-to-top and apex-to-bottom edges.
func rasterizeVerticalBase(fb *Framebuffer, left, center, right math3d.Point, c Color) {
	var top, bottom, apex math3d.Point
	var apexOnLeft bool
	if left.X == center.X {
		if left.Y > center.Y {
			top, bottom = left, center
		} else {
			top, bottom = center, left
		}
		apex = right
		apexOnLeft = false
	} else {
		if right.Y > center.Y {
			top, bottom = right, center
		} else {
			top, bottom = center, right
		}
		apex = left
		apexOnLeft = true
	}

	upperSlope, upperVertical := edgeSlope(top, apex)
	lowerSlope, lowerVertical := edgeSlope(bottom, apex)
	if upperVertical || lowerVertical {
		// Degenerate base collapsed onto the apex column; fill it like the
		// edge-on case. Unreachable through rasterize, which routes exact
		// three-way x equality to fillColumn already.
		if top.X >= 0 && top.X < float64(fb.Width) {
			fillColumn(fb, top.X, top.Y, bottom.Y, apex.Y, c)
		}
		return
	}

	if apexOnLeft {
		x := top.X
		for x > apex.X {
			topY := upperSlope*(x-apex.X) + apex.Y
			bottomY := lowerSlope*(x-apex.X) + apex.Y
			fillSpan(fb, x, topY, bottomY, c)
			x = snapToPixelCenter(x)
			x--
		}
		// The apex sits just past the last sampled column; include it when it
		// lies in the outer half of its pixel.
		if apex.X-math.Floor(apex.X) > 0.5 {
			fb.PaintF(apex.X, apex.Y, c)
		}
	} else {
		x := top.X
		for x < apex.X {
			topY := upperSlope*(x-apex.X) + apex.Y
			bottomY := lowerSlope*(x-apex.X) + apex.Y
			fillSpan(fb, x, topY, bottomY, c)
			x = snapToPixelCenter(x)
			x++
		}
		if apex.X-math.Floor(apex.X) < 0.5 {
			fb.PaintF(apex.X, apex.Y, c)
		}
	}
}

// rasterizeGeneral handles triangles whose three x coordinates are all
// distinct: a left-to-center sweep and a center-to-right sweep, each bounded
// by the long left-right edge on one side.
func rasterizeGeneral(fb *Framebuffer, left, center, right math3d.Point, c Color) {
	slopeLeftCenter, _ := edgeSlope(center, left)
	slopeLeftRight, _ := edgeSlope(right, left)
	slopeCenterRight, _ := edgeSlope(right, center)

	width := float64(fb.Width)

	x := left.X
	for x < center.X {
		if x >= 0 && x < width {
			topY := slopeLeftCenter*(x-left.X) + left.Y
			bottomY := slopeLeftRight*(x-left.X) + left.Y
			if topY < bottomY {
				topY, bottomY = bottomY, topY
			}
			fillSpan(fb, x, topY, bottomY, c)
			x = snapToPixelCenter(x)
		}
		x++
	}

	x = center.X
	for x < right.X {
		if x >= 0 && x < width {
			topY := slopeCenterRight*(x-right.X) + right.Y
			bottomY := slopeLeftRight*(x-right.X) + right.Y
			if topY < bottomY {
				topY, bottomY = bottomY, topY
			}
			fillSpan(fb, x, topY, bottomY, c)
			x = snapToPixelCenter(x)
		}
		x++
	}

	if right.X-math.Floor(right.X) < 0.5 {
		if right.X >= 0 && right.X < width {
			fb.PaintF(right.X, right.Y, c)
		}
	}
}
