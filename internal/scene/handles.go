package scene

import (
	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/animation"
	"github.com/ivlev/animscene/internal/arena"
	"github.com/ivlev/animscene/internal/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Mobject is a handle to any scene object. Its methods build target actions;
// nothing happens until they are played, acted or applied.
type Mobject struct {
	arena.Handle
}

func (m Mobject) target(a action.Action) animation.TargetAction {
	return animation.NewTargetAction(m.Handle, a)
}

func (m Mobject) MoveBy(v geom.Vector) animation.TargetAction {
	return m.target(&action.MoveBy{By: v})
}

func (m Mobject) MoveTo(p geom.Point) animation.TargetAction {
	return m.target(&action.MoveTo{To: p})
}

// ToEdge moves the object against the scene edge pointed to by dir, which
// must be one of geom.Up, geom.Down, geom.Left or geom.Right.
func (m Mobject) ToEdge(dir geom.Vector) animation.TargetAction {
	return m.ToEdgeBuffered(dir, action.DefaultBuffer)
}

func (m Mobject) ToEdgeBuffered(dir geom.Vector, buffer float64) animation.TargetAction {
	return m.target(&action.ToEdge{Direction: action.MustDirection(dir), Buffer: buffer})
}

func (m Mobject) ShowCreation() animation.TargetAction {
	return m.target(&action.ShowCreation{})
}

func (m Mobject) FadeIn() animation.TargetAction  { return m.target(&action.FadeIn{}) }
func (m Mobject) FadeOut() animation.TargetAction { return m.target(&action.FadeOut{}) }

func (m Mobject) FadeTo(alpha float64) animation.TargetAction {
	return m.target(&action.FadeTo{To: alpha})
}

func (m Mobject) SetColor(c colorful.Color) animation.TargetAction {
	return m.target(&action.ColorTo{To: c})
}

func (m Mobject) ScaleBy(k float64) animation.TargetAction {
	return m.target(&action.ChangeSize{Change: &action.Scale{By: k}})
}

func (m Mobject) SetWidth(w float64) animation.TargetAction {
	return m.target(&action.ChangeSize{Change: &action.SetWidth{To: w}})
}

func (m Mobject) SetHeight(h float64) animation.TargetAction {
	return m.target(&action.ChangeSize{Change: &action.SetHeight{To: h}})
}

func (m Mobject) SetSize(d geom.Dimension) animation.TargetAction {
	return m.target(&action.ChangeSize{Change: &action.SetSize{To: d}})
}

func (m Mobject) RotateBy(deg float64) animation.TargetAction {
	return m.target(&action.RotateBy{By: deg})
}

func (m Mobject) RotateTo(deg float64) animation.TargetAction {
	return m.target(&action.RotateTo{To: deg})
}

// CircleHandle adds circle-only actions.
type CircleHandle struct {
	Mobject
}

func (c CircleHandle) SetRadius(r float64) animation.TargetAction {
	return c.target(&action.CircleAction{Change: &action.SetRadius{To: r}})
}

// TextHandle adds text-only actions.
type TextHandle struct {
	Mobject
}

func (t TextHandle) SetFontSize(size float64) animation.TargetAction {
	return t.target(&action.TextAction{Change: &action.SetFontSize{To: size}})
}

func (t TextHandle) ScaleFontSize(k float64) animation.TargetAction {
	return t.target(&action.TextAction{Change: &action.ScaleFontSize{By: k}})
}
