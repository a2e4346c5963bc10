package object

import (
	"math"

	"github.com/ivlev/animscene/internal/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Position

func (o *Object) Position() geom.Point { return o.position }

func (o *Object) MoveTo(p geom.Point) { o.position = p }

func (o *Object) MoveBy(v geom.Vector) { o.position = o.position.Add(v) }

// Dimension

func (o *Object) Size() geom.Dimension { return o.size }

func (o *Object) Width() float64 { return o.size.Width }

func (o *Object) Height() float64 { return o.size.Height }

// SetSize clamps both components to be non-negative. A height change on
// text derives the font size from the box height, using the font-to-height
// ratio fixed by the last SetFontSize. Width does not touch the font.
func (o *Object) SetSize(d geom.Dimension) {
	d.Width = math.Max(0, d.Width)
	d.Height = math.Max(0, d.Height)
	if o.kind == KindText && d.Height != o.size.Height {
		o.fontSize = o.fontPerHeight * d.Height
	}
	o.size = d
}

func (o *Object) SetWidth(w float64) {
	o.SetSize(geom.Dim(w, o.size.Height))
}

func (o *Object) SetHeight(h float64) {
	o.SetSize(geom.Dim(o.size.Width, h))
}

// Radius is half the width; only meaningful for circles.
func (o *Object) Radius() float64 { return o.size.Width / 2 }

func (o *Object) SetRadius(r float64) {
	r = math.Max(0, r)
	o.size = geom.Dim(2*r, 2*r)
}

func (o *Object) FontSize() float64 { return o.fontSize }

// SetFontSize also re-anchors the font-to-height ratio, unless the box has
// no height to anchor to.
func (o *Object) SetFontSize(s float64) {
	o.fontSize = math.Max(0, s)
	if o.size.Height > 0 {
		o.fontPerHeight = o.fontSize / o.size.Height
	}
}

// Orientation, in degrees counter-clockwise.

func (o *Object) Orientation() float64 { return o.orientation }

func (o *Object) RotateTo(deg float64) { o.orientation = deg }

func (o *Object) RotateBy(deg float64) { o.orientation += deg }

// Opacity

func (o *Object) Opacity() float64 { return o.opacity.Alpha() }

func (o *Object) IsVisible() bool { return o.opacity.IsVisible() }

func (o *Object) Show() { o.opacity.Show() }

func (o *Object) Hide() { o.opacity.Hide() }

func (o *Object) SetOpacity(alpha float64) { o.opacity.Set(alpha) }

// Completion is the drawn fraction of the outline, used for draw-on effects.

func (o *Object) Completion() float64 { return o.completion }

func (o *Object) SetCompletion(c float64) {
	o.completion = geom.Clamp(c, 0, 1)
}

// Appearance

func (o *Object) Fill() colorful.Color { return o.fill }

func (o *Object) SetFill(c colorful.Color) { o.fill = c }

func (o *Object) Stroke() colorful.Color { return o.stroke }

func (o *Object) SetStroke(c colorful.Color) { o.stroke = c }

func (o *Object) StrokeWeight() float64 { return o.strokeWeight }

func (o *Object) SetStrokeWeight(w float64) { o.strokeWeight = math.Max(0, w) }
