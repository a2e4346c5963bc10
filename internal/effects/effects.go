package effects

import (
	"fmt"
	"strings"

	"github.com/ivlev/animscene/internal/config"
	"github.com/ivlev/animscene/internal/system"
)

// Effect produces the ffmpeg filter chain applied to the rendered frame
// stream. An empty string means no filter.
type Effect interface {
	GenerateFilter(params config.FrameParams) string
}

// DefaultEffect fades the video in from and out to black.
type DefaultEffect struct{}

func (e *DefaultEffect) GenerateFilter(p config.FrameParams) string {
	var filters []string

	fade := p.FadeDuration
	if fade > p.Duration/2 {
		fade = p.Duration / 2
	}
	if fade > 0 {
		filters = append(filters,
			fmt.Sprintf("fade=t=in:st=0:d=%.3f", fade),
			fmt.Sprintf("fade=t=out:st=%.3f:d=%.3f", p.Duration-fade, fade),
		)
	}

	if p.Debug && system.CheckFilterSupport("drawtext") {
		filters = append(filters, debugOverlay(p))
	}

	return strings.Join(filters, ",")
}

// debugOverlay prints the frame number and timestamp in the corner.
func debugOverlay(p config.FrameParams) string {
	size := p.Height / 30
	if size < 12 {
		size = 12
	}
	return fmt.Sprintf("drawtext=text='%%{n} %%{pts\\:hms}':x=10:y=10:fontsize=%d:fontcolor=yellow:box=1:boxcolor=black@0.5", size)
}

// NoEffect leaves frames untouched.
type NoEffect struct{}

func (NoEffect) GenerateFilter(config.FrameParams) string { return "" }
