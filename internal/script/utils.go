package script

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ivlev/animscene/internal/system"
)

// GenerateScriptPath creates a timestamped script filename inside dir
func GenerateScriptPath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("scene_%s.yaml", timestamp))
}

// FindLatestScript finds the most recently modified script in dir
func FindLatestScript(dir string) (string, error) {
	return system.FindLatest(dir, ".yaml", ".yml")
}

// DemoSource names the built-in demo in place of a script path.
const DemoSource = "demo"

// Resolve picks the script to run: path when set, otherwise the newest
// script in dir, otherwise the generated demo at width x height. It returns
// the script and where it came from.
func Resolve(path, dir string, width, height int) (*Script, string, error) {
	if path == DemoSource {
		sc, err := NewGenerator(width, height).GenerateScript()
		return sc, DemoSource, err
	}
	if path == "" {
		latest, err := FindLatestScript(dir)
		if err != nil {
			return Resolve(DemoSource, dir, width, height)
		}
		path = latest
	}
	sc, err := ReadScript(path)
	if err != nil {
		return nil, path, err
	}
	return sc, path, nil
}
