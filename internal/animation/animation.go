package animation

import (
	"fmt"

	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/arena"
	"github.com/ivlev/animscene/internal/easing"
	"github.com/ivlev/animscene/internal/object"
)

// DefaultRunTime is the duration used when a batch does not set one.
const DefaultRunTime = 1.0

type Status int

const (
	NotStarted Status = iota
	InProgress
	Complete
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Animation is an Action stretched over a duration with an easing curve.
// It moves NotStarted -> InProgress -> Complete and never goes back.
type Animation struct {
	Target   arena.Handle
	Action   action.Action
	Duration float64
	Easing   easing.Easing

	status   Status
	progress float64
}

func New(target arena.Handle, a action.Action, duration float64, e easing.Easing) *Animation {
	return &Animation{
		Target:   target,
		Action:   a,
		Duration: duration,
		Easing:   e,
	}
}

func (a *Animation) Status() Status { return a.status }

// Progress is the linear fraction of the duration reached so far.
func (a *Animation) Progress() float64 { return a.progress }

func (a *Animation) IsComplete() bool { return a.status == Complete }

// Update advances the animation to elapsed seconds after its start.
// Elapsed is clamped to [0, Duration]. The action captures its start state
// on the first call with elapsed > 0. A non-positive duration completes
// immediately.
func (a *Animation) Update(o *object.Object, elapsed float64, res action.Resource) {
	if a.status == Complete {
		return
	}
	if a.Duration <= 0 {
		a.Finish(o, res)
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > a.Duration {
		elapsed = a.Duration
	}
	if elapsed > 0 && a.status == NotStarted {
		action.Init(a.Action, o, res)
		a.status = InProgress
	}
	if a.status == NotStarted {
		return
	}

	a.progress = elapsed / a.Duration
	action.Update(a.Action, o, a.Easing.Apply(a.progress))
	if elapsed >= a.Duration {
		a.status = Complete
	}
}

// Finish forces the final state. It is a no-op once Complete. An animation
// that never started captures its start state first, so a skipped animation
// ends exactly where a fully played one would.
func (a *Animation) Finish(o *object.Object, res action.Resource) {
	if a.status == Complete {
		return
	}
	if a.status == NotStarted {
		action.Init(a.Action, o, res)
	}
	action.Complete(a.Action, o)
	a.progress = 1
	a.status = Complete
}
