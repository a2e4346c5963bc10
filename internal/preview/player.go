// Package preview plays a scene in real time, either in a desktop window or
// in the terminal.
package preview

import (
	"fmt"
	"image"

	"github.com/ivlev/animscene/internal/renderer"
	"github.com/ivlev/animscene/internal/scene"
	"github.com/lucasb-eyer/go-colorful"
)

// BuildFunc constructs a fresh scene. The player calls it again on every
// restart, since a scene only moves forward in time.
type BuildFunc func() (*scene.Scene, error)

// Player owns the playback clock shared by the window and terminal front
// ends.
type Player struct {
	Loop bool

	build      BuildFunc
	scene      *scene.Scene
	raster     *renderer.Raster
	frame      *image.RGBA
	background colorful.Color
	width      int
	height     int
	t          float64
	paused     bool
}

func NewPlayer(build BuildFunc, width, height int, background colorful.Color) (*Player, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	p := &Player{
		build:      build,
		background: background,
		width:      width,
		height:     height,
		frame:      image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	if err := p.Restart(); err != nil {
		return nil, err
	}
	return p, nil
}

// Restart rebuilds the scene and rewinds to zero.
func (p *Player) Restart() error {
	sc, err := p.build()
	if err != nil {
		return err
	}
	p.scene = sc
	p.raster = renderer.NewRaster(p.frame, renderer.NewCamera(sc.Bounds(), p.width, p.height))
	p.t = 0
	p.scene.Update(0)
	return nil
}

func (p *Player) Time() float64     { return p.t }
func (p *Player) Duration() float64 { return p.scene.Duration() }
func (p *Player) Paused() bool      { return p.paused }
func (p *Player) TogglePause()      { p.paused = !p.paused }

// Done reports whether a non-looping player reached the end.
func (p *Player) Done() bool { return !p.Loop && p.t >= p.Duration() }

// Advance moves the clock by dt seconds unless paused. Past the end a
// looping player starts over; otherwise the clock holds at the end.
func (p *Player) Advance(dt float64) error {
	if p.paused || dt <= 0 {
		return nil
	}
	next := p.t + dt
	if d := p.Duration(); next > d {
		if p.Loop && p.t >= d {
			return p.Restart()
		}
		next = d
	}
	p.t = next
	p.scene.Update(p.t)
	return nil
}

// Render draws the current state and returns the frame. The frame is
// reused by the next call.
func (p *Player) Render() *image.RGBA {
	p.raster.Clear(p.background)
	p.scene.Draw(p.raster)
	return p.frame
}
