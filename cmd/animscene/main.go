package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ivlev/animscene/internal/config"
	"github.com/ivlev/animscene/internal/effects"
	"github.com/ivlev/animscene/internal/engine"
	"github.com/ivlev/animscene/internal/script"
	"github.com/ivlev/animscene/internal/source"
	"github.com/ivlev/animscene/internal/system"
	"github.com/ivlev/animscene/internal/video"
)

var buildVersion = "dev"

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"scripts", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	scriptPtr := flag.String("script", "", "Путь к YAML-сценарию (по умолчанию: самый свежий в scripts/, \"demo\" - встроенное демо)")
	generatePtr := flag.Bool("generate", false, "Сохранить демо-сценарий в scripts/ и выйти")
	outputPtr := flag.String("output", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	framesPtr := flag.String("frames", "", "Папка для PNG-кадров вместо видео")
	durationPtr := flag.Float64("duration", 0, "Общая длительность видео (если 0, берется из сценария)")
	widthPtr := flag.Int("width", 1280, "Ширина")
	heightPtr := flag.Int("height", 720, "Высота")
	fpsPtr := flag.Int("fps", 30, "FPS")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Потоки записи PNG")
	fadePtr := flag.Float64("fade", 0, "Затемнение в начале и в конце (сек)")
	backgroundPtr := flag.String("background", "", "Цвет фона #rrggbb (по умолчанию из сценария или черный)")
	presetPtr := flag.String("preset", "", "Пресет формата: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram), 4:3")
	qualityPtr := flag.Int("quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	debugPtr := flag.Bool("debug", false, "Номер кадра и время поверх видео")
	statsPtr := flag.Bool("stats", false, "Отчет о производительности и запись в benchmark.log")

	flag.Parse()

	cfg := &config.Config{
		OutputVideo:   *outputPtr,
		FramesDir:     *framesPtr,
		TotalDuration: *durationPtr,
		Width:         *widthPtr,
		Height:        *heightPtr,
		FPS:           *fpsPtr,
		Workers:       *workersPtr,
		FadeDuration:  *fadePtr,
		Background:    *backgroundPtr,
		Preset:        *presetPtr,
		Debug:         *debugPtr,
		ShowStats:     *statsPtr,
		BuildVersion:  buildVersion,
	}
	cfg.ApplyPreset()

	if *generatePtr {
		sc, err := script.NewGenerator(cfg.Width, cfg.Height).GenerateScript()
		if err != nil {
			log.Fatalf("[-] Ошибка генерации сценария: %v", err)
		}
		path := script.GenerateScriptPath("scripts")
		if err := script.WriteScript(sc, path); err != nil {
			log.Fatalf("[-] Ошибка записи сценария: %v", err)
		}
		fmt.Printf("[+++] Успех! Сценарий сохранен: %s\n", path)
		return
	}

	sc, from, err := script.Resolve(*scriptPtr, "scripts", cfg.Width, cfg.Height)
	if err != nil {
		log.Fatalf("[-] Ошибка чтения сценария %s: %v", from, err)
	}
	cfg.ScriptPath = from
	if from == script.DemoSource {
		fmt.Println("[*] Сценарий не найден, используется встроенное демо")
	} else {
		fmt.Printf("[*] Используется сценарий: %s\n", from)
	}
	if cfg.Background == "" {
		cfg.Background = sc.Background
	}
	if cfg.Background == "" {
		cfg.Background = "#000000"
	}

	loader := source.NewLoader()
	defer loader.Close()

	sceneObj, err := script.NewScene(sc, cfg.Width, cfg.Height, loader)
	if err != nil {
		log.Fatalf("[-] Ошибка сборки сцены: %v", err)
	}

	var ve video.VideoEncoder
	result := cfg.FramesDir
	if cfg.FramesDir != "" {
		ve = video.NewPNGWriter(cfg.FramesDir, cfg.Workers)
	} else {
		if cfg.OutputVideo == "" {
			cfg.OutputVideo = outputName(from)
		}
		encoderName, _ := system.GetBestH264Encoder()
		if encoderName != "libx264" {
			fmt.Printf("[*] Обнаружено аппаратное ускорение: %s\n", encoderName)
		}
		cfg.VideoEncoder = encoderName
		cfg.Quality = defaultQuality(encoderName, *qualityPtr)
		ve = video.NewFFmpegEncoder(cfg.OutputVideo, cfg.VideoEncoder, cfg.Quality)
		result = cfg.OutputVideo
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := engine.NewProject(cfg, sceneObj, ve, &effects.DefaultEffect{})
	if err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", result)
}

func defaultQuality(encoderName string, quality int) int {
	if quality != 0 {
		return quality
	}
	switch encoderName {
	case "h264_videotoolbox":
		return 75 // Хорошее качество для VideoToolbox
	case "h264_nvenc":
		return 28 // Эквивалент CRF для NVENC
	default:
		return 23 // Стандартный CRF для x264
	}
}

func outputName(from string) string {
	baseName := filepath.Base(from)
	nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	cleanName := strings.ReplaceAll(nameOnly, " ", "_")
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join("output", fmt.Sprintf("%s_%s.mp4", cleanName, timestamp))
}
