package timeline

import (
	"fmt"

	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/animation"
	"github.com/ivlev/animscene/internal/arena"
	"github.com/ivlev/animscene/internal/object"
)

// Command is one entry of the timeline log. The set of variants is closed:
// *Wait, *Play, *Act, *Show and *Remove.
type Command interface {
	Duration() float64
	isCommand()
}

// Wait only advances the end time.
type Wait struct {
	Seconds float64
}

// Play runs one animation. Members of a batch are separate Play commands
// sharing a start time.
type Play struct {
	Animation *animation.Animation
}

// Act applies an action instantly, exactly once.
type Act struct {
	animation.TargetAction
	done bool
}

// Show makes an object visible without animating it.
type Show struct {
	Target arena.Handle
}

// Remove takes an object out of the pool.
type Remove struct {
	Target arena.Handle
}

func (*Wait) isCommand()   {}
func (*Play) isCommand()   {}
func (*Act) isCommand()    {}
func (*Show) isCommand()   {}
func (*Remove) isCommand() {}

func (c *Wait) Duration() float64 { return c.Seconds }
func (c *Play) Duration() float64 { return c.Animation.Duration }
func (*Act) Duration() float64    { return 0 }
func (*Show) Duration() float64   { return 0 }
func (*Remove) Duration() float64 { return 0 }

func (c *Wait) String() string { return fmt.Sprintf("wait(%.2fs)", c.Seconds) }
func (c *Play) String() string {
	return fmt.Sprintf("play(%T, %.2fs, %s)", c.Animation.Action, c.Animation.Duration, c.Animation.Easing)
}
func (c *Act) String() string    { return fmt.Sprintf("act(%T)", c.Action) }
func (c *Show) String() string   { return fmt.Sprintf("show(%d)", c.Target.Slot()) }
func (c *Remove) String() string { return fmt.Sprintf("remove(%d)", c.Target.Slot()) }

// TimedCommand is a command stamped with its absolute start time.
type TimedCommand struct {
	Start   float64
	Command Command
}

// Pool is the object store the scheduler mutates.
type Pool interface {
	Get(h arena.Handle) (*object.Object, bool)
	Remove(h arena.Handle) bool
}

// finish drives a command to its final state. Missing objects are skipped.
func finish(c Command, pool Pool, res action.Resource) {
	switch c := c.(type) {
	case *Play:
		if o, ok := pool.Get(c.Animation.Target); ok {
			c.Animation.Finish(o, res)
		}
	case *Act:
		c.apply(pool, res)
	case *Show:
		if o, ok := pool.Get(c.Target); ok {
			o.Show()
		}
	case *Remove:
		pool.Remove(c.Target)
	case *Wait:
	}
}

func (c *Act) apply(pool Pool, res action.Resource) {
	if c.done {
		return
	}
	c.done = true
	if o, ok := pool.Get(c.Target); ok {
		c.Finish(o, res)
	}
}
