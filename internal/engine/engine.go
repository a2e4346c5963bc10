package engine

import (
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/ivlev/animscene/internal/config"
	"github.com/ivlev/animscene/internal/effects"
	"github.com/ivlev/animscene/internal/renderer"
	"github.com/ivlev/animscene/internal/scene"
	"github.com/ivlev/animscene/internal/system"
	"github.com/ivlev/animscene/internal/video"
	"github.com/lucasb-eyer/go-colorful"
)

// Project renders a scene into an encoder frame by frame.
type Project struct {
	Config     *config.Config
	Scene      *scene.Scene
	Encoder    video.VideoEncoder
	Effect     effects.Effect
	Background colorful.Color

	// BenchmarkLog receives one line per run when ShowStats is set.
	BenchmarkLog string
}

func NewProject(cfg *config.Config, sc *scene.Scene, ve video.VideoEncoder, eff effects.Effect) *Project {
	bg, err := colorful.Hex(cfg.Background)
	if err != nil {
		bg = colorful.Color{}
	}
	return &Project{
		Config:       cfg,
		Scene:        sc,
		Encoder:      ve,
		Effect:       eff,
		Background:   bg,
		BenchmarkLog: "benchmark.log",
	}
}

// Duration is the configured total duration, or the timeline length when
// none is set.
func (p *Project) Duration() float64 {
	if p.Config.TotalDuration > 0 {
		return p.Config.TotalDuration
	}
	return p.Scene.Duration()
}

// FrameCount is the number of frames for duration seconds at fps. Both the
// first instant and the final state are rendered.
func FrameCount(duration float64, fps int) int {
	if fps <= 0 || duration <= 0 {
		return 1
	}
	return int(math.Ceil(duration*float64(fps)-1e-9)) + 1
}

// FrameTime is the scene time of frame i, clamped to duration.
func FrameTime(i, fps int, duration float64) float64 {
	if fps <= 0 {
		return 0
	}
	return math.Min(float64(i)/float64(fps), math.Max(duration, 0))
}

func (p *Project) Run(ctx context.Context) error {
	startTime := time.Now()

	duration := p.Duration()
	frames := FrameCount(duration, p.Config.FPS)

	params := p.Config.Params(duration)
	if p.Effect != nil {
		params.Filter = p.Effect.GenerateFilter(params)
	}

	fmt.Println("--- [PROJECT: ANIMATION ENGINE] ---")
	fmt.Printf("[*] Объектов: %d | Длительность: %.2fs | Кадров: %d\n", p.Scene.Len(), duration, frames)
	fmt.Printf("[*] Разрешение: %dx%d @ %d FPS\n", p.Config.Width, p.Config.Height, p.Config.FPS)
	fmt.Println("-----------------------------")

	if err := p.Encoder.Begin(ctx, params); err != nil {
		return fmt.Errorf("ошибка запуска энкодера: %w", err)
	}

	rect := image.Rect(0, 0, p.Config.Width, p.Config.Height)
	frame := system.GetImage(rect)
	defer system.PutImage(frame)
	raster := renderer.NewRaster(frame, renderer.NewCamera(p.Scene.Bounds(), p.Config.Width, p.Config.Height))

	renderStart := time.Now()
	var renderTime time.Duration
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			p.Encoder.End()
			return err
		}

		t0 := time.Now()
		p.RenderFrame(raster, FrameTime(i, p.Config.FPS, duration))
		renderTime += time.Since(t0)

		if err := p.Encoder.WriteFrame(frame); err != nil {
			p.Encoder.End()
			return fmt.Errorf("кадр %d: %w", i, err)
		}
		if p.Config.FPS > 0 && (i+1)%(p.Config.FPS*5) == 0 {
			fmt.Printf("[>] Кадров готово: %d/%d\n", i+1, frames)
		}
	}

	if err := p.Encoder.End(); err != nil {
		return fmt.Errorf("ошибка кодирования: %w", err)
	}

	if p.Config.ShowStats {
		p.report(frames, time.Since(startTime), renderTime, time.Since(renderStart)-renderTime)
	}
	return nil
}

// RenderFrame advances the scene to t and draws it into raster.
func (p *Project) RenderFrame(raster *renderer.Raster, t float64) {
	p.Scene.Update(t)
	raster.Clear(p.Background)
	p.Scene.Draw(raster)
}

func (p *Project) report(frames int, total, render, encode time.Duration) {
	fps := float64(frames) / total.Seconds()

	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Rendering (CPU): %.2fs\n"+
			"Encoding: %.2fs\n"+
			"Effective FPS: %.2f\n",
		p.Config.BuildVersion, total.Seconds(), render.Seconds(), encode.Seconds(), fps,
	)
	stats, err := system.CollectStats(200 * time.Millisecond)
	if err != nil {
		fmt.Printf("[!] Не удалось собрать статистику системы: %v\n", err)
	}
	report += stats.String() + "\n----------------------------\n"
	fmt.Print(report)

	if p.BenchmarkLog == "" {
		return
	}
	logEntry := fmt.Sprintf("[%s] Build: %s | Script: %s | Frames: %d | Total: %.2fs | Render: %.2fs | Encode: %.2fs | FPS: %.2f | RSS: %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(p.Config.ScriptPath),
		frames,
		total.Seconds(),
		render.Seconds(),
		encode.Seconds(),
		fps,
		system.FormatBytes(stats.ProcRSS),
	)

	f, err := os.OpenFile(p.BenchmarkLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Не удалось записать %s: %v\n", p.BenchmarkLog, err)
	}
}
