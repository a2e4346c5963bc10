package renderer

import (
	"math"

	"github.com/ivlev/animscene/internal/geom"
)

// Camera maps scene coordinates (origin at the centre, y up) to pixel
// coordinates (origin at the top-left, y down).
type Camera struct {
	Center geom.Point // Scene point shown at the frame centre
	Zoom   float64    // Pixels per scene unit
	Width  int        // Frame width in pixels
	Height int        // Frame height in pixels
}

// NewCamera fits the scene bounds into a width x height frame, keeping the
// aspect ratio.
func NewCamera(bounds geom.Bounds, width, height int) Camera {
	zoom := 1.0
	if bounds.Width() > 0 && bounds.Height() > 0 {
		zoom = math.Min(float64(width)/bounds.Width(), float64(height)/bounds.Height())
	}
	return Camera{
		Center: geom.Pt((bounds.Left+bounds.Right)/2, (bounds.Lower+bounds.Upper)/2),
		Zoom:   zoom,
		Width:  width,
		Height: height,
	}
}

// ToPixel converts a scene point to pixel coordinates.
func (c Camera) ToPixel(p geom.Point) (float64, float64) {
	x := float64(c.Width)/2 + (p.X-c.Center.X)*c.Zoom
	y := float64(c.Height)/2 - (p.Y-c.Center.Y)*c.Zoom
	return x, y
}

// ToScene is the inverse of ToPixel.
func (c Camera) ToScene(x, y float64) geom.Point {
	return geom.Pt(
		c.Center.X+(x-float64(c.Width)/2)/c.Zoom,
		c.Center.Y-(y-float64(c.Height)/2)/c.Zoom,
	)
}

// placement positions an object's local frame in the scene: local points
// are rotated by angle degrees counter-clockwise, then moved to center.
type placement struct {
	center geom.Point
	angle  float64
	camera Camera
}

func (pl placement) pixel(local geom.Point) (float64, float64) {
	return pl.camera.ToPixel(pl.center.Add(local.Rotate(geom.Origin, pl.angle)))
}
