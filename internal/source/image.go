package source

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageSource treats a single image, or every image in a directory, as
// pages.
type ImageSource struct {
	paths []string
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

func NewImageSource(path string) (*ImageSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if fi.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && isImage(entry.Name()) {
				paths = append(paths, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(paths)
	} else {
		paths = []string{path}
	}

	return &ImageSource{paths: paths}, nil
}

func (s *ImageSource) PageCount() int {
	return len(s.paths)
}

func (s *ImageSource) open(index int) (*os.File, error) {
	if index < 0 || index >= len(s.paths) {
		return nil, fmt.Errorf("image %d out of range (have %d)", index, len(s.paths))
	}
	return os.Open(s.paths[index])
}

func (s *ImageSource) GetPageDimensions(index int) (float64, float64, error) {
	f, err := s.open(index)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// RenderPage decodes the image; dpi does not apply to rasters.
func (s *ImageSource) RenderPage(index int, dpi int) (image.Image, error) {
	f, err := s.open(index)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s *ImageSource) Close() error {
	return nil
}
