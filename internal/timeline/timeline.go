package timeline

import (
	"sort"

	"github.com/ivlev/animscene/internal/action"
	"github.com/ivlev/animscene/internal/animation"
	"github.com/ivlev/animscene/internal/arena"
)

// Timeline is an append-only log of commands with derived start times.
// Every command starts at the end time of the log when it is appended.
type Timeline struct {
	commands []TimedCommand
	end      float64
}

// New returns a timeline holding the leading Wait(0) sentinel.
func New() *Timeline {
	t := &Timeline{}
	t.push(&Wait{})
	return t
}

// EndTime is the time at which the next appended command starts.
func (t *Timeline) EndTime() float64 { return t.end }

func (t *Timeline) Len() int { return len(t.commands) }

func (t *Timeline) At(i int) TimedCommand { return t.commands[i] }

func (t *Timeline) push(c Command) {
	start := t.end
	t.commands = append(t.commands, TimedCommand{Start: start, Command: c})
	if d := c.Duration(); d > 0 {
		t.end = start + d
	}
}

func (t *Timeline) Wait(seconds float64) { t.push(&Wait{Seconds: seconds}) }

func (t *Timeline) Act(ta animation.TargetAction) { t.push(&Act{TargetAction: ta}) }

func (t *Timeline) Show(h arena.Handle) { t.push(&Show{Target: h}) }

func (t *Timeline) Remove(h arena.Handle) { t.push(&Remove{Target: h}) }

// Play appends a batch of animations sharing one start time. The end time
// advances to the start plus the longest member duration.
func (t *Timeline) Play(batch []*animation.Animation) {
	start := t.end
	end := start
	for _, a := range batch {
		t.commands = append(t.commands, TimedCommand{Start: start, Command: &Play{Animation: a}})
		if e := start + a.Duration; e > end {
			end = e
		}
	}
	t.end = end
}

// FindIndex locates the commands active at scene time ts. idxEnd is the last
// command starting at or before ts. idxStart is the earliest command with
// nonzero duration sharing idxEnd's start time, or idxEnd if there is none.
func (t *Timeline) FindIndex(ts float64) (start float64, idxStart, idxEnd int) {
	idxEnd = sort.Search(len(t.commands), func(i int) bool {
		return t.commands[i].Start > ts
	}) - 1
	if idxEnd < 0 {
		idxEnd = 0
	}
	start = t.commands[idxEnd].Start
	idxStart = idxEnd
	for i := idxEnd; i >= 0 && t.commands[i].Start == start; i-- {
		if t.commands[i].Command.Duration() != 0 {
			idxStart = i
		}
	}
	return start, idxStart, idxEnd
}

// Process advances playback to scene time ts and returns the index to pass
// as prev on the next call. Commands between prev and the active batch are
// first driven to their final state in append order, then the active batch
// is interpolated with a shared elapsed time.
func (t *Timeline) Process(prev int, ts float64, pool Pool, res action.Resource) int {
	start, idxStart, idxEnd := t.FindIndex(ts)
	if prev < 0 {
		prev = 0
	}

	for i := prev; i < idxStart; i++ {
		finish(t.commands[i].Command, pool, res)
	}

	dt := ts - start
	for i := idxStart; i <= idxEnd; i++ {
		switch c := t.commands[i].Command.(type) {
		case *Play:
			if o, ok := pool.Get(c.Animation.Target); ok {
				c.Animation.Update(o, dt, res)
			}
		case *Wait:
		default:
			finish(c, pool, res)
		}
	}
	return idxStart
}
