package system

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось получить лимит файлов: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось установить лимит файлов: %v", err)
	} else {
		fmt.Printf("[*] Системный лимит открытых файлов увеличен до %d\n", rLimit.Cur)
	}
}

// FindLatest returns the most recently modified file in dir whose extension
// is one of exts (case-insensitive, with the leading dot).
func FindLatest(dir string, exts ...string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExt(f.Name(), exts) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("в папке %s не найдено файлов %s", dir, strings.Join(exts, ", "))
	}

	return latestFile, nil
}

func hasExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func GetBestH264Encoder() (string, string) {
	// Приоритеты:
	// 1. MacOS (VideoToolbox)
	// 2. NVIDIA (NVENC)
	// 3. Software (libx264)

	encoders := []struct {
		name string
		args string
	}{
		{"h264_videotoolbox", ""},
		{"h264_nvenc", ""},
	}

	out, err := ffmpegList("-encoders")
	if err != nil {
		return "libx264", ""
	}
	for _, enc := range encoders {
		if strings.Contains(out, enc.name) {
			return enc.name, enc.args
		}
	}

	return "libx264", ""
}

var (
	filtersOnce sync.Once
	filtersOut  string
)

// CheckFilterSupport reports whether the local ffmpeg build has the named
// filter. The filter list is queried once per process.
func CheckFilterSupport(name string) bool {
	filtersOnce.Do(func() {
		out, err := ffmpegList("-filters")
		if err != nil {
			log.Printf("[!] Не удалось получить список фильтров FFmpeg: %v", err)
			return
		}
		filtersOut = out
	})
	return hasFilter(filtersOut, name)
}

// hasFilter scans `ffmpeg -filters` output. Lines look like
// " T.C drawtext          V->V       Draw text ...".
func hasFilter(listing, name string) bool {
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == name {
			return true
		}
	}
	return false
}

func ffmpegList(flag string) (string, error) {
	cmd := exec.Command("ffmpeg", "-hide_banner", flag)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
