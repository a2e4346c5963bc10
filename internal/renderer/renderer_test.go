package renderer

import (
	"image"
	"math"
	"testing"

	"github.com/ivlev/animscene/internal/geom"
	"github.com/ivlev/animscene/internal/object"
	"github.com/lucasb-eyer/go-colorful"
)

var black = colorful.Color{}

func abs(x float64) float64 { return math.Abs(x) }

func newRaster(w, h int) *Raster {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	r := NewRaster(dst, NewCamera(geom.NewBounds(float64(w), float64(h)), w, h))
	r.Clear(black)
	return r
}

func TestCameraMapping(t *testing.T) {
	cam := NewCamera(geom.NewBounds(640, 480), 1280, 960)
	if cam.Zoom != 2 {
		t.Fatalf("Expected zoom 2, got %f", cam.Zoom)
	}

	tests := []struct {
		scene  geom.Point
		px, py float64
	}{
		{geom.Origin, 640, 480},
		{geom.Pt(-320, 240), 0, 0},
		{geom.Pt(320, -240), 1280, 960},
		{geom.Pt(10, 10), 660, 460},
	}
	for _, tt := range tests {
		x, y := cam.ToPixel(tt.scene)
		if abs(x-tt.px) > 1e-9 || abs(y-tt.py) > 1e-9 {
			t.Errorf("ToPixel(%v) = (%.1f,%.1f), expected (%.1f,%.1f)", tt.scene, x, y, tt.px, tt.py)
		}
		back := cam.ToScene(x, y)
		if abs(back.X-tt.scene.X) > 1e-9 || abs(back.Y-tt.scene.Y) > 1e-9 {
			t.Errorf("ToScene round trip: expected %v, got %v", tt.scene, back)
		}
	}
}

func TestPartialPolyline(t *testing.T) {
	line := [][2]float64{{0, 0}, {10, 0}, {10, 10}}
	half := partial(line, 0.5)
	end := half[len(half)-1]
	if len(half) != 2 || abs(end[0]-10) > 1e-9 || abs(end[1]) > 1e-9 {
		t.Errorf("Expected half of the path to end at (10,0), got %v", half)
	}
	quarter := partial(line, 0.25)
	if end := quarter[len(quarter)-1]; abs(end[0]-5) > 1e-9 {
		t.Errorf("Expected quarter to end at (5,0), got %v", end)
	}
	if got := partial(line, 1); len(got) != 3 {
		t.Errorf("Full path should be unchanged, got %v", got)
	}
}

func TestDrawCircleFill(t *testing.T) {
	r := newRaster(64, 64)
	c := object.NewCircle()
	c.SetRadius(20)
	c.SetStrokeWeight(0)
	c.Show()

	r.Draw(c, geom.Origin)

	center := r.Image().RGBAAt(32, 32)
	wantR, wantG, wantB := object.DefaultFill.RGB255()
	if center.R != wantR || center.G != wantG || center.B != wantB {
		t.Errorf("Centre should be the fill colour, got %v", center)
	}
	if corner := r.Image().RGBAAt(1, 1); corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Errorf("Corner should stay black, got %v", corner)
	}
}

func TestDrawSkipsHidden(t *testing.T) {
	r := newRaster(32, 32)
	c := object.NewRectangle()
	r.Draw(c, geom.Origin)
	if px := r.Image().RGBAAt(16, 16); px.R != 0 {
		t.Errorf("Hidden object must not be drawn, got %v", px)
	}
}

func TestDrawUsesOrigin(t *testing.T) {
	r := newRaster(64, 64)
	sq := object.NewRectangle()
	sq.SetSize(geom.Dim(10, 10))
	sq.SetStrokeWeight(0)
	sq.Show()

	r.Draw(sq, geom.Pt(-20, 20))
	if px := r.Image().RGBAAt(12, 12); px.R == 0 {
		t.Error("Expected the square drawn around the parent origin")
	}
	if px := r.Image().RGBAAt(32, 32); px.R != 0 {
		t.Errorf("Scene centre should be empty, got %v", px)
	}
}

func TestStrokeDrawOn(t *testing.T) {
	r := newRaster(64, 64)
	sq := object.NewRectangle()
	sq.SetSize(geom.Dim(40, 40))
	sq.SetFill(black)
	sq.Show()
	sq.SetCompletion(0.25)

	r.Draw(sq, geom.Origin)

	// The outline starts at the top-left and runs along the top edge first.
	if px := r.Image().RGBAAt(32, 12); px.R < 200 {
		t.Errorf("Top edge should be stroked, got %v", px)
	}
	if px := r.Image().RGBAAt(32, 52); px.R > 50 {
		t.Errorf("Bottom edge should not be stroked yet, got %v", px)
	}
}

func TestDrawText(t *testing.T) {
	r := newRaster(200, 60)
	txt := object.NewText("Hi")
	txt.SetFontSize(26)
	txt.Show()

	r.Draw(txt, geom.Origin)

	lit := 0
	img := r.Image()
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected text pixels")
	}
}

func TestDrawPicture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	pic := object.NewPicture(src)
	pic.Show()

	r := newRaster(32, 32)
	r.Draw(pic, geom.Origin)
	if px := r.Image().RGBAAt(16, 16); px.R != 255 {
		t.Errorf("Expected white picture at the centre, got %v", px)
	}
	if px := r.Image().RGBAAt(2, 2); px.R != 0 {
		t.Errorf("Outside the picture should be black, got %v", px)
	}
}

func TestDrawEmptyPicture(t *testing.T) {
	pic := object.NewPicture(image.NewRGBA(image.Rect(0, 0, 0, 10)))
	pic.SetSize(geom.Dim(20, 20))
	pic.Show()
	pic.SetCompletion(0.5)

	r := newRaster(32, 32)
	r.Draw(pic, geom.Origin)
	for i, v := range r.Image().Pix {
		if i%4 != 3 && v != 0 {
			t.Fatalf("Empty picture must not draw, byte %d is %d", i, v)
		}
	}
}
