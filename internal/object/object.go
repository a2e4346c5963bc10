package object

import (
	"image"

	"github.com/ivlev/animscene/internal/arena"
	"github.com/ivlev/animscene/internal/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind tags the shape variant of an Object.
type Kind int

const (
	KindCircle Kind = iota
	KindRectangle
	KindText
	KindPicture
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindText:
		return "text"
	case KindPicture:
		return "picture"
	}
	return "unknown"
}

const (
	DefaultRadius       = 2.0
	DefaultRectSize     = 30.0
	DefaultFontSize     = 90.0
	DefaultStrokeWeight = 3.0
)

var (
	// DefaultFill is the original palette's RED_D.
	DefaultFill   = colorful.Color{R: 230.0 / 255.0, G: 90.0 / 255.0, B: 76.0 / 255.0}
	DefaultStroke = colorful.Color{R: 1, G: 1, B: 1}
)

// Object is a drawable shape. Common state (position, size, orientation,
// opacity, completion) lives here; the kind selects which shape-specific
// fields are meaningful. Fields are private so the opacity/visibility
// coupling and the clamping rules hold.
type Object struct {
	kind   Kind
	parent arena.Handle

	position    geom.Point
	size        geom.Dimension
	orientation float64
	opacity     Opacity
	completion  float64

	fill         colorful.Color
	stroke       colorful.Color
	strokeWeight float64

	// text
	text          string
	fontSize      float64
	fontPerHeight float64

	// picture
	picture image.Image
}

func newObject(kind Kind, size geom.Dimension) *Object {
	return &Object{
		kind:         kind,
		size:         size,
		opacity:      NewOpacity(false),
		completion:   1,
		fill:         DefaultFill,
		stroke:       DefaultStroke,
		strokeWeight: DefaultStrokeWeight,
	}
}

// NewCircle creates a hidden circle with the default radius.
func NewCircle() *Object {
	return newObject(KindCircle, geom.Dim(2*DefaultRadius, 2*DefaultRadius))
}

// NewRectangle creates a hidden 30x30 rectangle.
func NewRectangle() *Object {
	return newObject(KindRectangle, geom.Dim(DefaultRectSize, DefaultRectSize))
}

// NewText creates a hidden text block.
func NewText(s string) *Object {
	o := newObject(KindText, geom.Dim(500, 120))
	o.text = s
	o.SetFontSize(DefaultFontSize)
	return o
}

// NewPicture creates a hidden picture sized to the image bounds.
func NewPicture(img image.Image) *Object {
	var size geom.Dimension
	if img != nil {
		b := img.Bounds()
		size = geom.Dim(float64(b.Dx()), float64(b.Dy()))
	}
	o := newObject(KindPicture, size)
	o.picture = img
	return o
}

func (o *Object) Kind() Kind { return o.kind }

// Parent implements arena.Node.
func (o *Object) Parent() arena.Handle { return o.parent }

func (o *Object) SetParent(h arena.Handle) { o.parent = h }

func (o *Object) Text() string { return o.text }

func (o *Object) Picture() image.Image { return o.picture }
