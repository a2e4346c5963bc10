package scene

import (
	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/animation"
	"github.com/ivlev/animscene/internal/easing"
)

// Builder collects a batch of target actions that start together. Commit
// appends the whole batch as one play command group; setters have no effect
// afterwards.
type Builder struct {
	scene   *Scene
	actions []animation.TargetAction

	runTime   float64
	rateFunc  easing.Easing
	rateSet   bool
	committed bool
}

func (b *Builder) Add(tas ...animation.TargetAction) *Builder {
	if !b.committed {
		for _, ta := range tas {
			b.scene.claim(ta.Action)
		}
		b.actions = append(b.actions, tas...)
	}
	return b
}

func (b *Builder) RunTime(seconds float64) *Builder {
	if !b.committed {
		b.runTime = seconds
	}
	return b
}

func (b *Builder) RateFunc(e easing.Easing) *Builder {
	if !b.committed {
		b.rateFunc = e
		b.rateSet = true
	}
	return b
}

// Easing reports the curve the batch will use. Without an explicit rate
// function it is Quad for batches that draw an object on, Linear otherwise.
func (b *Builder) Easing() easing.Easing {
	if b.rateSet {
		return b.rateFunc
	}
	for _, ta := range b.actions {
		if _, ok := ta.Action.(*action.ShowCreation); ok {
			return easing.Quad
		}
	}
	return easing.Linear
}

// Commit appends the batch. Calling it again does nothing.
func (b *Builder) Commit() {
	if b.committed {
		return
	}
	b.committed = true
	if b.scene.pending == b {
		b.scene.pending = nil
	}

	e := b.Easing()
	batch := make([]*animation.Animation, 0, len(b.actions))
	for i := range b.actions {
		batch = append(batch, b.actions[i].Promote(b.runTime, e))
	}
	b.scene.timeline.Play(batch)
}
