package scene

import (
	"image"

	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/animation"
	"github.com/ivlev/animscene/internal/arena"
	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/object"
	"github.com/ivlev/animscene/internal/timeline"
)

// Renderer draws one object. origin is the position of the object's parent,
// or the scene origin for top-level objects.
type Renderer interface {
	Draw(o *object.Object, origin geom.Point)
}

// Construct is implemented by anything that authors a scene.
type Construct interface {
	Construct(s *Scene)
}

// ConstructFunc adapts a plain function to Construct.
type ConstructFunc func(s *Scene)

func (f ConstructFunc) Construct(s *Scene) { f(s) }

// Scene owns the object arena and the timeline. Authoring calls append to
// the timeline; Update replays it up to a scene time.
type Scene struct {
	objects  *arena.Arena[*object.Object]
	timeline *timeline.Timeline
	bounds   geom.Bounds

	pending *Builder
	prev    int
	time    float64

	// claimed holds actions already handed to the timeline or applied, so a
	// copy of their TargetAction cannot run them a second time.
	claimed map[action.Action]struct{}
}

// New creates an empty scene whose edges are bounds.
func New(bounds geom.Bounds) *Scene {
	return &Scene{
		objects:  arena.New[*object.Object](),
		timeline: timeline.New(),
		bounds:   bounds,
		claimed:  make(map[action.Action]struct{}),
	}
}

// Build creates a scene and runs c against it.
func Build(bounds geom.Bounds, c Construct) *Scene {
	s := New(bounds)
	c.Construct(s)
	s.flush()
	return s
}

func (s *Scene) Bounds() geom.Bounds { return s.bounds }

func (s *Scene) Timeline() *timeline.Timeline {
	s.flush()
	return s.timeline
}

// Time is the scene time of the last Update.
func (s *Scene) Time() float64 { return s.time }

// Duration is the end time of the timeline.
func (s *Scene) Duration() float64 {
	s.flush()
	return s.timeline.EndTime()
}

// Len is the number of objects currently in the scene.
func (s *Scene) Len() int { return s.objects.Len() }

func (s *Scene) Get(h arena.Handle) (*object.Object, bool) {
	return s.objects.Get(h)
}

func (s *Scene) Contains(h arena.Handle) bool { return s.objects.Contains(h) }

// Add stores o and returns its handle. Objects start hidden.
func (s *Scene) Add(o *object.Object) Mobject {
	return Mobject{Handle: s.objects.Add(o)}
}

func (s *Scene) Circle() CircleHandle {
	return CircleHandle{s.Add(object.NewCircle())}
}

func (s *Scene) Rectangle() Mobject {
	return s.Add(object.NewRectangle())
}

func (s *Scene) Text(str string) TextHandle {
	return TextHandle{s.Add(object.NewText(str))}
}

func (s *Scene) Picture(img image.Image) Mobject {
	return s.Add(object.NewPicture(img))
}

// Attach makes parent the one-level parent of child. The child is then
// positioned relative to the parent when drawn.
func (s *Scene) Attach(child, parent arena.Handle) bool {
	o, ok := s.objects.Get(child)
	if !ok || !s.objects.Contains(parent) {
		return false
	}
	o.SetParent(parent)
	return true
}

// Play starts a batch. The batch is appended on Commit, or automatically
// before the next authoring call.
func (s *Scene) Play(tas ...animation.TargetAction) *Builder {
	s.flush()
	b := &Builder{scene: s, runTime: animation.DefaultRunTime}
	b.Add(tas...)
	s.pending = b
	return b
}

// Act appends an instant action.
func (s *Scene) Act(ta animation.TargetAction) {
	s.flush()
	ta.FinishOnDrop = false
	s.claim(ta.Action)
	s.timeline.Act(ta)
}

func (s *Scene) Show(h arena.Handle) {
	s.flush()
	s.timeline.Show(h)
}

func (s *Scene) Remove(h arena.Handle) {
	s.flush()
	s.timeline.Remove(h)
}

func (s *Scene) Wait(seconds float64) {
	s.flush()
	s.timeline.Wait(seconds)
}

// Apply performs ta on its object right now, outside the timeline. It is
// what a target action that is never played amounts to, so it does nothing
// for actions already played, acted or applied.
func (s *Scene) Apply(ta animation.TargetAction) bool {
	if !ta.FinishOnDrop || s.Claimed(ta) {
		return false
	}
	o, ok := s.objects.Get(ta.Target)
	if !ok {
		return false
	}
	s.claim(ta.Action)
	ta.Finish(o, s.bounds)
	return true
}

// Claimed reports whether ta's action was already given to Play, Act or
// Apply.
func (s *Scene) Claimed(ta animation.TargetAction) bool {
	_, ok := s.claimed[ta.Action]
	return ok
}

func (s *Scene) claim(a action.Action) {
	if a != nil {
		s.claimed[a] = struct{}{}
	}
}

// RemoveNow drops an object immediately. Animations still queued for it are
// skipped.
func (s *Scene) RemoveNow(h arena.Handle) bool {
	return s.objects.Remove(h)
}

// Update advances playback to scene time t. t must not decrease between
// calls.
func (s *Scene) Update(t float64) {
	s.flush()
	s.prev = s.timeline.Process(s.prev, t, s.objects, s.bounds)
	s.time = t
}

// Draw hands every visible object to r in slot order.
func (s *Scene) Draw(r Renderer) {
	s.objects.Each(func(h arena.Handle, o *object.Object) bool {
		if !o.IsVisible() {
			return true
		}
		origin := geom.Origin
		if p, ok := s.objects.GetParent(h); ok {
			origin = p.Position()
		}
		r.Draw(o, origin)
		return true
	})
}

func (s *Scene) flush() {
	if s.pending != nil {
		s.pending.Commit()
	}
}
