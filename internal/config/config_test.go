package config

import "testing"

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        string
		width, height int
	}{
		{"16:9", 1280, 720},
		{"9:16", 720, 1280},
		{"4:5", 1080, 1350},
		{"4:3", 640, 480},
		{"", 800, 600},
		{"21:9", 800, 600},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			c := &Config{Width: 800, Height: 600, Preset: tt.preset}
			c.ApplyPreset()
			if c.Width != tt.width || c.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, c.Width, c.Height)
			}
		})
	}
}

func TestParams(t *testing.T) {
	c := &Config{Width: 640, Height: 480, FPS: 24, FadeDuration: 0.5, Debug: true, TotalDuration: 99}
	p := c.Params(9)
	if p.Duration != 9 {
		t.Errorf("Expected the render duration, got %f", p.Duration)
	}
	if p.Width != 640 || p.Height != 480 || p.FPS != 24 || p.FadeDuration != 0.5 || !p.Debug {
		t.Errorf("Unexpected params %+v", p)
	}
	if p.Filter != "" {
		t.Errorf("Filter is set by the effect, got %q", p.Filter)
	}
}
