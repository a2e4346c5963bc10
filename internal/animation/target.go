package animation

import (
	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/arena"
	"github.com/ivlev/animscene/internal/easing"
	"github.com/ivlev/animscene/internal/object"
)

// TargetAction pairs an object handle with an action. It is either applied
// instantly or promoted into an Animation by a batch builder.
type TargetAction struct {
	Target arena.Handle
	Action action.Action
	// FinishOnDrop marks an action that should be applied instantly if it is
	// dropped without being promoted into an animation.
	FinishOnDrop bool
}

func NewTargetAction(target arena.Handle, a action.Action) TargetAction {
	return TargetAction{Target: target, Action: a, FinishOnDrop: true}
}

// Finish applies the action to o as an instant mutation.
func (ta TargetAction) Finish(o *object.Object, res action.Resource) {
	action.Apply(ta.Action, o, res)
}

// Promote turns the pair into a timed animation. The promoted action is no
// longer finished on drop.
func (ta *TargetAction) Promote(duration float64, e easing.Easing) *Animation {
	ta.FinishOnDrop = false
	return New(ta.Target, ta.Action, duration, e)
}
