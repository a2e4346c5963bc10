package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"

	"github.com/ivlev/animscene/internal/config"
)

// VideoEncoder consumes a stream of equally sized frames.
type VideoEncoder interface {
	Begin(ctx context.Context, params config.FrameParams) error
	WriteFrame(img *image.RGBA) error
	End() error
}

// FFmpegEncoder pipes raw RGBA frames into an ffmpeg process.
type FFmpegEncoder struct {
	Output      string
	EncoderName string
	Quality     int

	cmd   *exec.Cmd
	stdin io.WriteCloser
	log   bytes.Buffer
}

func NewFFmpegEncoder(output, encoderName string, quality int) *FFmpegEncoder {
	return &FFmpegEncoder{Output: output, EncoderName: encoderName, Quality: quality}
}

func (e *FFmpegEncoder) Begin(ctx context.Context, params config.FrameParams) error {
	if e.cmd != nil {
		return errors.New("encoder already started")
	}
	args := e.buildFFmpegArgs(params)

	e.cmd = exec.CommandContext(ctx, "ffmpeg", args...)
	e.log.Reset()
	e.cmd.Stdout = &e.log
	e.cmd.Stderr = &e.log

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		e.cmd = nil
		return fmt.Errorf("stdin pipe error: %w", err)
	}
	e.stdin = stdin

	if err := e.cmd.Start(); err != nil {
		e.cmd = nil
		return fmt.Errorf("ffmpeg start error: %w", err)
	}
	return nil
}

func (e *FFmpegEncoder) buildFFmpegArgs(params config.FrameParams) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
	}
	if params.Filter != "" {
		args = append(args, "-vf", params.Filter)
	}
	args = append(args,
		"-pix_fmt", "yuv420p",
		"-c:v", e.EncoderName,
	)

	// Качество в зависимости от энкодера
	switch e.EncoderName {
	case "h264_videotoolbox":
		bitrate := e.Quality * 100
		args = append(args, "-b:v", fmt.Sprintf("%dk", bitrate))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", e.Quality))
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", e.Quality), "-preset", "medium")
	}

	args = append(args, e.Output)
	return args
}

func (e *FFmpegEncoder) WriteFrame(img *image.RGBA) error {
	if e.cmd == nil {
		return errors.New("encoder not started")
	}
	if err := writeRawRGBA(e.stdin, img); err != nil {
		return fmt.Errorf("write raw error: %w", err)
	}
	return nil
}

func (e *FFmpegEncoder) End() error {
	if e.cmd == nil {
		return errors.New("encoder not started")
	}
	defer func() { e.cmd = nil }()

	e.stdin.Close()
	if err := e.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w\nLog: %s", err, e.log.String())
	}
	return nil
}

// writeRawRGBA writes tightly packed RGBA rows, repacking when the frame
// has a stride or offset.
func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}
