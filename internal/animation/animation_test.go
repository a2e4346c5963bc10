package animation

import (
	"math"
	"testing"

	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/arena"
	"github.com/ivlev/animscene/internal/easing"
	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/object"
)

var bounds = geom.NewBounds(640, 480)

func TestStatusTransitions(t *testing.T) {
	o := object.NewRectangle()
	anim := New(arena.Nil, &action.MoveBy{By: geom.Pt(100, 0)}, 1.0, easing.Linear)

	anim.Update(o, 0, bounds)
	if anim.Status() != NotStarted {
		t.Fatalf("Zero elapsed must not start the animation, got %v", anim.Status())
	}

	anim.Update(o, 0.5, bounds)
	if anim.Status() != InProgress {
		t.Fatalf("Expected InProgress, got %v", anim.Status())
	}
	if math.Abs(o.Position().X-50) > 1e-9 {
		t.Errorf("Expected x=50, got %f", o.Position().X)
	}

	anim.Update(o, 1.2, bounds)
	if anim.Status() != Complete {
		t.Fatalf("Expected Complete, got %v", anim.Status())
	}
	if o.Position().X != 100 {
		t.Errorf("Expected x=100, got %f", o.Position().X)
	}
	if anim.Progress() != 1 {
		t.Errorf("Expected progress 1, got %f", anim.Progress())
	}

	// Terminal state: further updates do nothing
	o.MoveTo(geom.Pt(0, 0))
	anim.Update(o, 0.2, bounds)
	if o.Position().X != 0 {
		t.Error("Complete animation must not write to the object")
	}
}

func TestInitCapturedOnFirstTick(t *testing.T) {
	o := object.NewRectangle()
	anim := New(arena.Nil, &action.MoveBy{By: geom.Pt(10, 0)}, 1.0, easing.Linear)

	// The object moves between append and first tick
	o.MoveTo(geom.Pt(500, 0))
	anim.Update(o, 1.0, bounds)
	if o.Position().X != 510 {
		t.Errorf("Expected start captured at first tick (510), got %f", o.Position().X)
	}
}

func TestNonPositiveDurationCompletes(t *testing.T) {
	for _, d := range []float64{0, -1} {
		o := object.NewRectangle()
		anim := New(arena.Nil, &action.MoveTo{To: geom.Pt(7, 7)}, d, easing.Linear)
		anim.Update(o, 0, bounds)
		if !anim.IsComplete() {
			t.Errorf("duration=%.1f: expected Complete", d)
		}
		if o.Position() != geom.Pt(7, 7) {
			t.Errorf("duration=%.1f: expected final position, got %v", d, o.Position())
		}
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	o := object.NewRectangle()
	anim := New(arena.Nil, &action.MoveBy{By: geom.Pt(0, 30)}, 2.0, easing.BounceOut)

	anim.Finish(o, bounds)
	anim.Finish(o, bounds)
	if o.Position().Y != 30 {
		t.Errorf("Expected y=30 after finishing twice, got %f", o.Position().Y)
	}
}

func TestFinishFromPartialState(t *testing.T) {
	o := object.NewRectangle()
	anim := New(arena.Nil, &action.RotateBy{By: 90}, 1.0, easing.Quad)
	anim.Update(o, 0.3, bounds)
	anim.Finish(o, bounds)
	if o.Orientation() != 90 || !anim.IsComplete() {
		t.Errorf("Expected 90 degrees and Complete, got %f %v", o.Orientation(), anim.Status())
	}
}

func TestPromoteClearsFinishOnDrop(t *testing.T) {
	ta := NewTargetAction(arena.Nil, &action.FadeIn{})
	if !ta.FinishOnDrop {
		t.Fatal("New target actions finish on drop")
	}
	anim := ta.Promote(2, easing.Sine)
	if ta.FinishOnDrop {
		t.Error("Promoted target action must not finish on drop")
	}
	if anim.Duration != 2 || anim.Easing != easing.Sine || anim.Status() != NotStarted {
		t.Errorf("Unexpected animation %+v", anim)
	}
}
