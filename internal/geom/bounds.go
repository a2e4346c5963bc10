package geom

// Bounds holds the four scene edges. It is set once from the host window
// geometry and read by edge-relative actions.
type Bounds struct {
	Left  float64
	Right float64
	Lower float64
	Upper float64
}

// NewBounds centres a width x height window on the origin.
func NewBounds(width, height float64) Bounds {
	return Bounds{
		Left:  -width / 2,
		Right: width / 2,
		Lower: -height / 2,
		Upper: height / 2,
	}
}

func (b Bounds) EdgeUpper() float64 { return b.Upper }
func (b Bounds) EdgeLower() float64 { return b.Lower }
func (b Bounds) EdgeLeft() float64  { return b.Left }
func (b Bounds) EdgeRight() float64 { return b.Right }

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Upper - b.Lower }
