package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ivlev/animscene/internal/geom"
	"gopkg.in/yaml.v3"
)

// Version is the script format written by WriteScript. Readers accept any
// 1.x script.
const Version = "1.0"

var ErrUnsupportedVersion = errors.New("unsupported script version")

// Script is a scene authored as data instead of Go code
type Script struct {
	Version    string       `yaml:"version"`
	Title      string       `yaml:"title,omitempty"`
	Width      int          `yaml:"width,omitempty"`
	Height     int          `yaml:"height,omitempty"`
	Background string       `yaml:"background,omitempty"`
	Objects    []ObjectSpec `yaml:"objects"`
	Steps      []Step       `yaml:"steps"`
}

// ObjectSpec declares one scene object and its initial state
type ObjectSpec struct {
	Name         string      `yaml:"name"`
	Kind         string      `yaml:"kind"` // circle, rectangle, text, picture
	Text         string      `yaml:"text,omitempty"`
	Radius       float64     `yaml:"radius,omitempty"`
	Width        float64     `yaml:"width,omitempty"`
	Height       float64     `yaml:"height,omitempty"`
	FontSize     float64     `yaml:"font_size,omitempty"`
	Position     *geom.Point `yaml:"position,omitempty"`
	Rotation     float64     `yaml:"rotation,omitempty"`
	Fill         string      `yaml:"fill,omitempty"`   // #rrggbb
	Stroke       string      `yaml:"stroke,omitempty"` // #rrggbb
	StrokeWeight float64     `yaml:"stroke_weight,omitempty"`
	Visible      bool        `yaml:"visible,omitempty"`
	Parent       string      `yaml:"parent,omitempty"`

	// Pictures: an image file, a PDF page or a QR code
	Source string `yaml:"source,omitempty"`
	Page   int    `yaml:"page,omitempty"`
	DPI    int    `yaml:"dpi,omitempty"`
	QR     string `yaml:"qr,omitempty"`
}

// Step is one timeline entry. Exactly one field must be set.
type Step struct {
	Wait   *float64     `yaml:"wait,omitempty"`
	Show   []string     `yaml:"show,omitempty"`
	Remove []string     `yaml:"remove,omitempty"`
	Act    []ActionSpec `yaml:"act,omitempty"`
	Play   *PlaySpec    `yaml:"play,omitempty"`
}

// WaitStep builds a wait step. A zero wait is valid and adds no time.
func WaitStep(seconds float64) Step {
	return Step{Wait: &seconds}
}

// PlaySpec is a batch of actions that start together
type PlaySpec struct {
	RunTime  float64      `yaml:"run_time,omitempty"`
	RateFunc string       `yaml:"rate_func,omitempty"`
	Actions  []ActionSpec `yaml:"actions"`
}

// ActionSpec describes one action. Target is an object name or a glob
// pattern over object names ("dot_*").
type ActionSpec struct {
	Target    string          `yaml:"target"`
	Type      string          `yaml:"type"`
	To        *geom.Point     `yaml:"to,omitempty"`
	By        *geom.Point     `yaml:"by,omitempty"`
	Direction string          `yaml:"direction,omitempty"`
	Buffer    *float64        `yaml:"buffer,omitempty"`
	Value     float64         `yaml:"value,omitempty"`
	Size      *geom.Dimension `yaml:"size,omitempty"`
	Color     string          `yaml:"color,omitempty"`
}

// WriteScript writes sc as YAML, stamping Version when sc has none. sc
// itself is left untouched.
func WriteScript(sc *Script, path string) error {
	out := *sc
	if out.Version == "" {
		out.Version = Version
	}
	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadScript reads a YAML script. Unknown keys are errors, so a misspelt
// field fails loudly instead of being dropped. A script without a version is
// read as the current one.
func ReadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Script
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if sc.Version == "" {
		sc.Version = Version
	}
	if sc.Version != "1" && !strings.HasPrefix(sc.Version, "1.") {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedVersion, sc.Version)
	}
	return &sc, nil
}
