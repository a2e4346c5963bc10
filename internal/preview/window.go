package preview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window shows the player in a desktop window.
// Space pauses, R restarts, Escape or Q closes.
type Window struct {
	player *Player
}

func NewWindow(p *Player) *Window {
	return &Window{player: p}
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return w.player.Restart()
	}
	return w.player.Advance(1 / float64(ebiten.TPS()))
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.player.Render().Pix)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.player.width, w.player.height
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run(title string) error {
	ebiten.SetWindowSize(w.player.width, w.player.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(w)
}
