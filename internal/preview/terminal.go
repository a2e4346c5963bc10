package preview

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the top half of a cell in the foreground colour, so each
// cell carries two vertically stacked pixels.
const upperHalf = '▀'

// Terminal shows the player in a terminal using half-block cells.
// Space pauses, r restarts, Escape or q quits.
type Terminal struct {
	player *Player
	screen tcell.Screen
	fps    int
}

func NewTerminal(p *Player, fps int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = 30
	}
	screen.HideCursor()
	return &Terminal{player: p, screen: screen, fps: fps}, nil
}

// Run plays until the user quits, ctx is cancelled, or a non-looping
// player reaches the end.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.screen.Fini()

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	t.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			quit, err := t.handleInput(ev)
			if err != nil || quit {
				return err
			}

		case now := <-ticker.C:
			if err := t.player.Advance(now.Sub(last).Seconds()); err != nil {
				return err
			}
			last = now
			t.draw()
			if t.player.Done() {
				return nil
			}
		}
	}
}

func (t *Terminal) handleInput(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return true, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			t.player.TogglePause()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			return false, t.player.Restart()
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false, nil
}

func (t *Terminal) draw() {
	cols, rows := t.screen.Size()
	grid := downsample(t.player.Render(), cols, rows*2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := grid[2*y][x], grid[2*y+1][x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top[0]), int32(top[1]), int32(top[2]))).
				Background(tcell.NewRGBColor(int32(bottom[0]), int32(bottom[1]), int32(bottom[2])))
			t.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	t.screen.Show()
}

// downsample fits img into a cols x rows grid keeping the aspect ratio, and
// samples the pixel under each grid cell centre. Cells outside the picture
// are black.
func downsample(img *image.RGBA, cols, rows int) [][][3]uint8 {
	grid := make([][][3]uint8, rows)
	for i := range grid {
		grid[i] = make([][3]uint8, cols)
	}
	b := img.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return grid
	}

	scale := float64(b.Dx()) / float64(cols)
	if s := float64(b.Dy()) / float64(rows); s > scale {
		scale = s
	}
	offX := (float64(cols) - float64(b.Dx())/scale) / 2
	offY := (float64(rows) - float64(b.Dy())/scale) / 2

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			px := b.Min.X + int(math.Floor((float64(x)+0.5-offX)*scale))
			py := b.Min.Y + int(math.Floor((float64(y)+0.5-offY)*scale))
			if !(image.Point{px, py}).In(b) {
				continue
			}
			c := img.RGBAAt(px, py)
			grid[y][x] = [3]uint8{c.R, c.G, c.B}
		}
	}
	return grid
}
