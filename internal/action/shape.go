package action

import (
	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/object"
)

// SizeChange is the inner action of ChangeSize.
type SizeChange interface {
	init(o *object.Object)
	update(o *object.Object, p float64)
}

type SetWidth struct {
	From float64
	To   float64
}

type SetHeight struct {
	From float64
	To   float64
}

type SetSize struct {
	From geom.Dimension
	To   geom.Dimension
}

// Scale multiplies both dimensions by By; To is resolved at init.
type Scale struct {
	From geom.Dimension
	To   geom.Dimension
	By   float64
}

func (c *SetWidth) init(o *object.Object)  { c.From = o.Width() }
func (c *SetHeight) init(o *object.Object) { c.From = o.Height() }
func (c *SetSize) init(o *object.Object)   { c.From = o.Size() }

func (c *Scale) init(o *object.Object) {
	c.From = o.Size()
	c.To = geom.Dim(c.From.Width*c.By, c.From.Height*c.By)
}

func (c *SetWidth) update(o *object.Object, p float64) {
	o.SetWidth(geom.Lerp(c.From, c.To, p))
}

func (c *SetHeight) update(o *object.Object, p float64) {
	o.SetHeight(geom.Lerp(c.From, c.To, p))
}

func (c *SetSize) update(o *object.Object, p float64) {
	o.SetSize(geom.LerpDimension(c.From, c.To, p))
}

func (c *Scale) update(o *object.Object, p float64) {
	o.SetSize(geom.LerpDimension(c.From, c.To, p))
}

// CircleChange is the inner action of CircleAction.
type CircleChange interface {
	init(o *object.Object)
	update(o *object.Object, p float64)
}

type SetRadius struct {
	From float64
	To   float64
}

func (c *SetRadius) init(o *object.Object) { c.From = o.Radius() }

func (c *SetRadius) update(o *object.Object, p float64) {
	o.SetRadius(geom.Lerp(c.From, c.To, p))
}

// TextChange is the inner action of TextAction.
type TextChange interface {
	init(o *object.Object)
	update(o *object.Object, p float64)
}

type SetFontSize struct {
	From float64
	To   float64
}

type ScaleFontSize struct {
	From float64
	To   float64
	By   float64
}

func (c *SetFontSize) init(o *object.Object) { c.From = o.FontSize() }

func (c *ScaleFontSize) init(o *object.Object) {
	c.From = o.FontSize()
	c.To = c.From * c.By
}

func (c *SetFontSize) update(o *object.Object, p float64) {
	o.SetFontSize(geom.Lerp(c.From, c.To, p))
}

func (c *ScaleFontSize) update(o *object.Object, p float64) {
	o.SetFontSize(geom.Lerp(c.From, c.To, p))
}
