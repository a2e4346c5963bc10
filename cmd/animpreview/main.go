package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ivlev/animscene/internal/config"
	"github.com/ivlev/animscene/internal/preview"
	"github.com/ivlev/animscene/internal/scene"
	"github.com/ivlev/animscene/internal/script"
	"github.com/ivlev/animscene/internal/source"
	"github.com/lucasb-eyer/go-colorful"
)

func main() {
	scriptPtr := flag.String("script", "", "Путь к YAML-сценарию (по умолчанию: самый свежий в scripts/, \"demo\" - встроенное демо)")
	widthPtr := flag.Int("width", 960, "Ширина окна")
	heightPtr := flag.Int("height", 540, "Высота окна")
	presetPtr := flag.String("preset", "", "Пресет формата: 16:9, 9:16, 4:5, 4:3")
	termPtr := flag.Bool("term", false, "Просмотр в терминале вместо окна")
	fpsPtr := flag.Int("fps", 30, "FPS в терминале")
	loopPtr := flag.Bool("loop", true, "Повторять сцену")
	backgroundPtr := flag.String("background", "", "Цвет фона #rrggbb")

	flag.Parse()

	cfg := &config.Config{Width: *widthPtr, Height: *heightPtr, Preset: *presetPtr}
	cfg.ApplyPreset()

	sc, from, err := script.Resolve(*scriptPtr, "scripts", cfg.Width, cfg.Height)
	if err != nil {
		log.Fatalf("[-] Ошибка чтения сценария %s: %v", from, err)
	}

	bgHex := *backgroundPtr
	if bgHex == "" {
		bgHex = sc.Background
	}
	bg, err := colorful.Hex(bgHex)
	if err != nil {
		bg = colorful.Color{}
	}

	loader := source.NewLoader()
	defer loader.Close()

	build := func() (*scene.Scene, error) {
		return script.NewScene(sc, cfg.Width, cfg.Height, loader)
	}
	player, err := preview.NewPlayer(build, cfg.Width, cfg.Height, bg)
	if err != nil {
		log.Fatalf("[-] Ошибка сборки сцены: %v", err)
	}
	player.Loop = *loopPtr

	if *termPtr {
		term, err := preview.NewTerminal(player, *fpsPtr)
		if err != nil {
			log.Fatalf("[-] Ошибка инициализации терминала: %v", err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := term.Run(ctx); err != nil && err != context.Canceled {
			log.Fatalf("[-] Ошибка просмотра: %v", err)
		}
		return
	}

	fmt.Printf("[*] Просмотр: %s (Пробел - пауза, R - заново, Esc - выход)\n", from)
	title := sc.Title
	if title == "" {
		title = "animscene"
	}
	if err := preview.NewWindow(player).Run(title); err != nil {
		log.Fatalf("[-] Ошибка просмотра: %v", err)
	}
}
