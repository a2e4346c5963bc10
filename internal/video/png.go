package video

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ivlev/animscene/internal/config"
	"github.com/ivlev/animscene/internal/system"
	"golang.org/x/sync/errgroup"
)

// PNGWriter writes every frame as a numbered PNG file. Frames are encoded
// in parallel by up to Workers goroutines.
type PNGWriter struct {
	Dir     string
	Workers int

	g     *errgroup.Group
	ctx   context.Context
	index int
}

func NewPNGWriter(dir string, workers int) *PNGWriter {
	return &PNGWriter{Dir: dir, Workers: workers}
}

// FramePath is the file name of frame i.
func (w *PNGWriter) FramePath(i int) string {
	return filepath.Join(w.Dir, fmt.Sprintf("frame_%05d.png", i))
}

func (w *PNGWriter) Begin(ctx context.Context, params config.FrameParams) error {
	if w.g != nil {
		return errors.New("writer already started")
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}
	w.g, w.ctx = errgroup.WithContext(ctx)
	if w.Workers > 0 {
		w.g.SetLimit(w.Workers)
	}
	w.index = 0
	return nil
}

// WriteFrame copies img into a pooled buffer, so the caller may reuse img
// as soon as WriteFrame returns.
func (w *PNGWriter) WriteFrame(img *image.RGBA) error {
	if w.g == nil {
		return errors.New("writer not started")
	}
	if err := w.ctx.Err(); err != nil {
		return err
	}

	buf := system.GetImage(img.Rect)
	draw.Draw(buf, buf.Rect, img, img.Rect.Min, draw.Src)
	path := w.FramePath(w.index)
	w.index++

	w.g.Go(func() error {
		defer system.PutImage(buf)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, buf); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		return f.Close()
	})
	return nil
}

func (w *PNGWriter) End() error {
	if w.g == nil {
		return errors.New("writer not started")
	}
	err := w.g.Wait()
	w.g = nil
	return err
}

// Frames reports how many frames were written since Begin.
func (w *PNGWriter) Frames() int { return w.index }
