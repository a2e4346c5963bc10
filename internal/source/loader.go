package source

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/skip2/go-qrcode"
)

// Open picks a Source by file extension.
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewFitzPDFSource(path)
	}
	return NewImageSource(path)
}

// QRCode renders content as a square QR code image of size pixels.
func QRCode(content string, size int) (image.Image, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}
	return q.Image(size), nil
}

// Loader resolves picture objects of a scene script. Sources are opened once
// per path and kept until Close.
type Loader struct {
	mu      sync.Mutex
	sources map[string]Source
}

func NewLoader() *Loader {
	return &Loader{sources: make(map[string]Source)}
}

func (l *Loader) source(path string) (Source, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if src, ok := l.sources[path]; ok {
		return src, nil
	}
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	l.sources[path] = src
	return src, nil
}

func (l *Loader) LoadPicture(path string, page, dpi int) (image.Image, error) {
	src, err := l.source(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	img, err := src.RenderPage(page, dpi)
	if err != nil {
		return nil, fmt.Errorf("render %s page %d: %w", path, page, err)
	}
	return img, nil
}

func (l *Loader) LoadQRCode(content string, size int) (image.Image, error) {
	return QRCode(content, size)
}

func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var first error
	for path, src := range l.sources {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
		delete(l.sources, path)
	}
	return first
}
