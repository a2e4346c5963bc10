package geom

import "math"

// Point is a position in scene coordinates (origin at the centre, y up).
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vector is a displacement in scene coordinates.
type Vector = Point

var (
	Origin = Vector{X: 0, Y: 0}
	Up     = Vector{X: 0, Y: 1}
	Down   = Vector{X: 0, Y: -1}
	Right  = Vector{X: 1, Y: 0}
	Left   = Vector{X: -1, Y: 0}
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Rotate turns p around c by deg degrees counter-clockwise.
func (p Point) Rotate(c Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{X: c.X + dx*cos - dy*sin, Y: c.Y + dx*sin + dy*cos}
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// LerpPoint interpolates both components of a point.
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Dimension is a width/height pair. Both components are kept non-negative by
// the object setters, not by this type.
type Dimension struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func Dim(w, h float64) Dimension {
	return Dimension{Width: w, Height: h}
}

func LerpDimension(a, b Dimension, t float64) Dimension {
	return Dimension{Width: Lerp(a.Width, b.Width, t), Height: Lerp(a.Height, b.Height, t)}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
