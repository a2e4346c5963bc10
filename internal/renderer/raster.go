package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/object"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Raster draws scene objects into an RGBA frame with a software
// rasterizer. It implements scene.Renderer.
type Raster struct {
	Camera Camera
	dst    *image.RGBA
	z      *vector.Rasterizer
}

// NewRaster draws into dst through camera.
func NewRaster(dst *image.RGBA, camera Camera) *Raster {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return &Raster{Camera: camera, dst: dst, z: z}
}

// Image returns the frame being drawn.
func (r *Raster) Image() *image.RGBA { return r.dst }

// Clear fills the frame with c.
func (r *Raster) Clear(c colorful.Color) {
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(toNRGBA(c, 1)), image.Point{}, draw.Src)
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	red, green, blue := c.Clamped().RGB255()
	return color.NRGBA{R: red, G: green, B: blue, A: uint8(math.Round(geom.Clamp(alpha, 0, 1) * 255))}
}

// Draw renders o. origin is added to the object position.
func (r *Raster) Draw(o *object.Object, origin geom.Point) {
	if !o.IsVisible() || o.Opacity() <= 0 {
		return
	}
	pl := placement{
		center: o.Position().Add(origin),
		angle:  o.Orientation(),
		camera: r.Camera,
	}

	switch o.Kind() {
	case object.KindCircle:
		r.drawShape(o, pl, circleOutline(o.Radius(), r.Camera.Zoom))
	case object.KindRectangle:
		r.drawShape(o, pl, rectOutline(o.Width(), o.Height()))
	case object.KindText:
		r.drawText(o, pl)
	case object.KindPicture:
		r.drawPicture(o, pl)
	}
}

func (r *Raster) drawShape(o *object.Object, pl placement, outline []geom.Point) {
	if len(outline) < 3 {
		return
	}
	pts := make([][2]float64, len(outline))
	for i, p := range outline {
		pts[i][0], pts[i][1] = pl.pixel(p)
	}

	// Fill fades in with the draw-on progress.
	if fillAlpha := o.Opacity() * o.Completion(); fillAlpha > 0 {
		r.reset()
		r.z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
		for _, p := range pts[1:] {
			r.z.LineTo(float32(p[0]), float32(p[1]))
		}
		r.z.ClosePath()
		r.paint(toNRGBA(o.Fill(), fillAlpha))
	}

	width := o.StrokeWeight() * r.Camera.Zoom
	if width <= 0 || o.Completion() <= 0 {
		return
	}
	closed := append(pts, pts[0])
	r.reset()
	strokePolyline(r.z, partial(closed, o.Completion()), width)
	r.paint(toNRGBA(o.Stroke(), o.Opacity()))
}

func (r *Raster) reset() {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *Raster) paint(c color.NRGBA) {
	r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// circleOutline approximates a circle with enough segments to look round at
// the given zoom.
func circleOutline(radius, zoom float64) []geom.Point {
	if radius <= 0 {
		return nil
	}
	n := int(math.Ceil(radius * zoom * 0.75))
	if n < 16 {
		n = 16
	}
	if n > 256 {
		n = 256
	}
	pts := make([]geom.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Pt(radius*math.Cos(a), radius*math.Sin(a))
	}
	return pts
}

// rectOutline starts at the top-left corner and runs clockwise on screen.
func rectOutline(w, h float64) []geom.Point {
	if w <= 0 || h <= 0 {
		return nil
	}
	hw, hh := w/2, h/2
	return []geom.Point{
		geom.Pt(-hw, hh),
		geom.Pt(hw, hh),
		geom.Pt(hw, -hh),
		geom.Pt(-hw, -hh),
	}
}

// partial cuts a polyline to the fraction t of its length.
func partial(pts [][2]float64, t float64) [][2]float64 {
	if t >= 1 {
		return pts
	}
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += math.Hypot(pts[i][0]-pts[i-1][0], pts[i][1]-pts[i-1][1])
	}
	remaining := total * t
	out := [][2]float64{pts[0]}
	for i := 1; i < len(pts); i++ {
		seg := math.Hypot(pts[i][0]-pts[i-1][0], pts[i][1]-pts[i-1][1])
		if seg >= remaining {
			if seg > 0 {
				k := remaining / seg
				out = append(out, [2]float64{
					pts[i-1][0] + (pts[i][0]-pts[i-1][0])*k,
					pts[i-1][1] + (pts[i][1]-pts[i-1][1])*k,
				})
			}
			return out
		}
		remaining -= seg
		out = append(out, pts[i])
	}
	return out
}

// strokePolyline adds one quad per segment, extended by half the width at
// both ends so corners close. Quads are wound the same way so overlaps
// accumulate instead of cancelling.
func strokePolyline(z *vector.Rasterizer, pts [][2]float64, width float64) {
	hw := width / 2
	for i := 1; i < len(pts); i++ {
		x0, y0 := pts[i-1][0], pts[i-1][1]
		x1, y1 := pts[i][0], pts[i][1]
		dx, dy := x1-x0, y1-y0
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		ux, uy := dx/l*hw, dy/l*hw
		nx, ny := -uy, ux

		ax, ay := x0-ux, y0-uy
		bx, by := x1+ux, y1+uy
		z.MoveTo(float32(ax+nx), float32(ay+ny))
		z.LineTo(float32(bx+nx), float32(by+ny))
		z.LineTo(float32(bx-nx), float32(by-ny))
		z.LineTo(float32(ax-nx), float32(ay-ny))
		z.ClosePath()
	}
}
