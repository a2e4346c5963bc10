package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestImageSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 8, 4)
	writePNG(t, filepath.Join(dir, "a.png"), 2, 3)
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0644)

	src, err := NewImageSource(dir)
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	if src.PageCount() != 2 {
		t.Fatalf("Expected 2 images, got %d", src.PageCount())
	}

	w, h, err := src.GetPageDimensions(0)
	if err != nil || w != 2 || h != 3 {
		t.Errorf("Expected sorted first image 2x3, got %.0fx%.0f (%v)", w, h, err)
	}
	if _, err := src.RenderPage(5, 72); err == nil {
		t.Error("Expected an error for an out of range page")
	}
}

func TestLoaderCachesSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")
	writePNG(t, path, 5, 5)

	l := NewLoader()
	defer l.Close()

	for i := 0; i < 2; i++ {
		img, err := l.LoadPicture(path, 0, 150)
		if err != nil {
			t.Fatalf("LoadPicture failed: %v", err)
		}
		if img.Bounds().Dx() != 5 {
			t.Errorf("Expected width 5, got %d", img.Bounds().Dx())
		}
	}
	if len(l.sources) != 1 {
		t.Errorf("Expected one cached source, got %d", len(l.sources))
	}

	if _, err := l.LoadPicture(filepath.Join(dir, "missing.png"), 0, 150); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestQRCode(t *testing.T) {
	img, err := QRCode("https://example.com", 128)
	if err != nil {
		t.Fatalf("QRCode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("Expected 128x128, got %v", b)
	}
}
