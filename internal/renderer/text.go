package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/object"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// glyphHeight is the line height of face in pixels.
const glyphHeight = 13

// drawText renders the visible prefix of the text (draw-on reveals it left
// to right) at font size, centred on the object.
func (r *Raster) drawText(o *object.Object, pl placement) {
	runes := []rune(o.Text())
	n := int(math.Ceil(float64(len(runes)) * o.Completion()))
	if n <= 0 || o.FontSize() <= 0 {
		return
	}

	full := font.MeasureString(face, o.Text()).Ceil()
	shown := string(runes[:n])
	mask := image.NewAlpha(image.Rect(0, 0, full, glyphHeight))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(shown)

	scale := o.FontSize() / glyphHeight
	r.transform(mask, pl, geom.Dim(float64(full)*scale, o.FontSize()), toNRGBA(o.Fill(), o.Opacity()))
}

// drawPicture scales the image to the object size. Draw-on reveals it left
// to right.
func (r *Raster) drawPicture(o *object.Object, pl placement) {
	img := o.Picture()
	if img == nil || o.Completion() <= 0 {
		return
	}
	sr := img.Bounds()
	if sr.Empty() {
		return
	}
	size := o.Size()
	if c := o.Completion(); c < 1 {
		sr.Max.X = sr.Min.X + int(math.Ceil(float64(sr.Dx())*c))
		// keep the revealed part where it sits in the full picture
		shift := size.Width * (1 - float64(sr.Dx())/float64(img.Bounds().Dx())) / 2
		pl.center = pl.center.Add(geom.Pt(-shift, 0).Rotate(geom.Origin, pl.angle))
		size.Width *= float64(sr.Dx()) / float64(img.Bounds().Dx())
	}

	s2d := r.affine(pl, sr, size)
	var opts *draw.Options
	if a := o.Opacity(); a < 1 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(math.Round(a * 255))})}
	}
	draw.BiLinear.Transform(r.dst, s2d, img, sr, draw.Over, opts)
}

// transform paints c through mask, mapping the mask onto a box of size
// scene units.
func (r *Raster) transform(mask *image.Alpha, pl placement, size geom.Dimension, c color.NRGBA) {
	s2d := r.affine(pl, mask.Bounds(), size)
	src := image.NewUniform(c)
	// SrcMask is in source coordinates, so a uniform source can be shaped by
	// the glyph mask.
	draw.BiLinear.Transform(r.dst, s2d, src, mask.Bounds(), draw.Over, &draw.Options{SrcMask: mask})
}

// affine builds the source-to-destination matrix placing rectangle sr,
// centred, as a box of size scene units.
func (r *Raster) affine(pl placement, sr image.Rectangle, size geom.Dimension) f64.Aff3 {
	w, h := float64(sr.Dx()), float64(sr.Dy())
	local := func(sx, sy float64) geom.Point {
		return geom.Pt(
			(sx-float64(sr.Min.X)-w/2)*size.Width/w,
			-(sy-float64(sr.Min.Y)-h/2)*size.Height/h,
		)
	}
	x0, y0 := pl.pixel(local(0, 0))
	x1, y1 := pl.pixel(local(1, 0))
	x2, y2 := pl.pixel(local(0, 1))
	return f64.Aff3{
		x1 - x0, x2 - x0, x0,
		y1 - y0, y2 - y0, y0,
	}
}
