package config

type Config struct {
	ScriptPath    string
	OutputVideo   string
	FramesDir     string
	TotalDuration float64
	Width         int
	Height        int
	FPS           int
	Workers       int
	FadeDuration  float64
	Background    string
	Preset        string
	VideoEncoder  string
	Quality       int
	Debug         bool
	ShowStats     bool
	BuildVersion  string
}

// FrameParams describes the frame stream handed to an encoder.
type FrameParams struct {
	Width, Height int
	FPS           int
	Duration      float64
	FadeDuration  float64
	Debug         bool
	Filter        string
}

// Params derives the frame stream parameters for a render of duration
// seconds.
func (c *Config) Params(duration float64) FrameParams {
	return FrameParams{
		Width:        c.Width,
		Height:       c.Height,
		FPS:          c.FPS,
		Duration:     duration,
		FadeDuration: c.FadeDuration,
		Debug:        c.Debug,
	}
}

// ApplyPreset overrides the frame size for the named aspect preset.
func (c *Config) ApplyPreset() {
	switch c.Preset {
	case "16:9":
		c.Width, c.Height = 1280, 720
	case "9:16":
		c.Width, c.Height = 720, 1280
	case "4:5":
		c.Width, c.Height = 1080, 1350
	case "4:3":
		c.Width, c.Height = 640, 480
	}
}
