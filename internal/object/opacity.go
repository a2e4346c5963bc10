package object

// Opacity couples alpha with visibility: alpha > 0 means visible and a
// hidden object always has alpha 0.
type Opacity struct {
	visible bool
	alpha   float64
}

func NewOpacity(visible bool) Opacity {
	if visible {
		return Opacity{visible: true, alpha: 1}
	}
	return Opacity{}
}

func (o Opacity) Alpha() float64 { return o.alpha }

func (o Opacity) IsVisible() bool { return o.visible }

func (o *Opacity) Show() {
	o.visible = true
	o.alpha = 1
}

func (o *Opacity) Hide() {
	o.visible = false
	o.alpha = 0
}

// Set clamps alpha to at most 1; anything at or below 0 hides.
func (o *Opacity) Set(alpha float64) {
	if alpha <= 0 {
		o.Hide()
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	o.visible = true
	o.alpha = alpha
}
