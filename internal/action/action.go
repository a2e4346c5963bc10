package action

import (
	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/object"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBuffer is the margin ToEdge keeps from the scene edge.
const DefaultBuffer = 0.25

// Resource supplies the read-only scene edges consumed by edge-relative
// actions.
type Resource interface {
	EdgeUpper() float64
	EdgeLower() float64
	EdgeLeft() float64
	EdgeRight() float64
}

// Action describes a change to one object property. The set of variants is
// closed; Init and Update switch over all of them.
//
// "From" fields are captured by Init from the live object, never at
// construction time.
type Action interface {
	isAction()
}

type MoveBy struct {
	From geom.Point
	By   geom.Vector
}

type MoveTo struct {
	From geom.Point
	To   geom.Point
}

// ToEdge resolves To against the scene edges at Init.
type ToEdge struct {
	From      geom.Point
	To        geom.Point
	Buffer    float64
	Direction Direction
}

// ChangeSize delegates to a size change shared by every shape kind.
type ChangeSize struct {
	Change SizeChange
}

type RotateBy struct {
	From float64
	By   float64
}

type RotateTo struct {
	From float64
	To   float64
}

// ShowCreation makes the object visible and draws its outline on.
type ShowCreation struct{}

type FadeIn struct{}

type FadeOut struct {
	From float64
}

type FadeTo struct {
	From float64
	To   float64
}

// ColorTo blends the fill colour in HCL space.
type ColorTo struct {
	From colorful.Color
	To   colorful.Color
}

// CircleAction delegates to a circle-only change; other kinds ignore it.
type CircleAction struct {
	Change CircleChange
}

// TextAction delegates to a text-only change; other kinds ignore it.
type TextAction struct {
	Change TextChange
}

func (*MoveBy) isAction()       {}
func (*MoveTo) isAction()       {}
func (*ToEdge) isAction()       {}
func (*ChangeSize) isAction()   {}
func (*RotateBy) isAction()     {}
func (*RotateTo) isAction()     {}
func (*ShowCreation) isAction() {}
func (*FadeIn) isAction()       {}
func (*FadeOut) isAction()      {}
func (*FadeTo) isAction()       {}
func (*ColorTo) isAction()      {}
func (*CircleAction) isAction() {}
func (*TextAction) isAction()   {}

// Init captures the start state of a from the object. It runs once, on the
// first tick with positive elapsed time, or right before an instant apply.
func Init(a Action, o *object.Object, res Resource) {
	switch a := a.(type) {
	case *MoveBy:
		a.From = o.Position()
	case *MoveTo:
		a.From = o.Position()
	case *ToEdge:
		a.From = o.Position()
		a.To = a.Direction.Target(o.Position(), res, a.Buffer)
	case *ChangeSize:
		a.Change.init(o)
	case *RotateBy:
		a.From = o.Orientation()
	case *RotateTo:
		a.From = o.Orientation()
	case *ShowCreation:
		o.Show()
		o.SetCompletion(0)
	case *FadeIn:
		o.SetOpacity(0)
	case *FadeOut:
		a.From = o.Opacity()
	case *FadeTo:
		a.From = o.Opacity()
	case *ColorTo:
		a.From = o.Fill()
	case *CircleAction:
		if o.Kind() == object.KindCircle {
			a.Change.init(o)
		}
	case *TextAction:
		if o.Kind() == object.KindText {
			a.Change.init(o)
		}
	}
}

// Update writes the state at progress p through the object's setters. It
// depends only on the captured start, the target and p, so calling it twice
// with the same p leaves the same state.
func Update(a Action, o *object.Object, p float64) {
	switch a := a.(type) {
	case *MoveBy:
		o.MoveTo(geom.LerpPoint(a.From, a.From.Add(a.By), p))
	case *MoveTo:
		o.MoveTo(geom.LerpPoint(a.From, a.To, p))
	case *ToEdge:
		o.MoveTo(geom.LerpPoint(a.From, a.To, p))
	case *ChangeSize:
		a.Change.update(o, p)
	case *RotateBy:
		o.RotateTo(geom.Lerp(a.From, a.From+a.By, p))
	case *RotateTo:
		o.RotateTo(geom.Lerp(a.From, a.To, p))
	case *ShowCreation:
		o.SetCompletion(p)
	case *FadeIn:
		o.SetOpacity(geom.Clamp(p, 0, 1))
	case *FadeOut:
		o.SetOpacity(geom.Lerp(a.From, 0, p))
	case *FadeTo:
		o.SetOpacity(geom.Lerp(a.From, a.To, p))
	case *ColorTo:
		if p >= 1 {
			o.SetFill(a.To)
			return
		}
		o.SetFill(a.From.BlendHcl(a.To, p).Clamped())
	case *CircleAction:
		if o.Kind() == object.KindCircle {
			a.Change.update(o, p)
		}
	case *TextAction:
		if o.Kind() == object.KindText {
			a.Change.update(o, p)
		}
	}
}

// Complete fast-forwards a to its final state.
func Complete(a Action, o *object.Object) {
	Update(a, o, 1)
}

// Apply performs a as an instant mutation: capture, then complete.
func Apply(a Action, o *object.Object, res Resource) {
	Init(a, o, res)
	Complete(a, o)
}
