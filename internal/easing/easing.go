package easing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

// Easing selects a rate curve applied to linear progress before
// interpolation. The plain family names (Quad, Cubic, ...) are in-out curves.
type Easing int

const (
	Linear Easing = iota
	Quad
	QuadIn
	QuadOut
	Cubic
	CubicIn
	CubicOut
	Quart
	QuartIn
	QuartOut
	Quint
	QuintIn
	QuintOut
	Sine
	SineIn
	SineOut
	Expo
	ExpoIn
	ExpoOut
	Circ
	CircIn
	CircOut
	Elastic
	ElasticIn
	ElasticOut
	Back
	BackIn
	BackOut
	Bounce
	BounceIn
	BounceOut
)

// ErrUnknown is returned by Parse for names outside the table.
var ErrUnknown = errors.New("unknown easing")

var table = []struct {
	name string
	fn   func(float64) float64
}{
	Linear:     {"linear", ease.Linear},
	Quad:       {"quad", ease.InOutQuad},
	QuadIn:     {"quad_in", ease.InQuad},
	QuadOut:    {"quad_out", ease.OutQuad},
	Cubic:      {"cubic", ease.InOutCubic},
	CubicIn:    {"cubic_in", ease.InCubic},
	CubicOut:   {"cubic_out", ease.OutCubic},
	Quart:      {"quart", ease.InOutQuart},
	QuartIn:    {"quart_in", ease.InQuart},
	QuartOut:   {"quart_out", ease.OutQuart},
	Quint:      {"quint", ease.InOutQuint},
	QuintIn:    {"quint_in", ease.InQuint},
	QuintOut:   {"quint_out", ease.OutQuint},
	Sine:       {"sine", ease.InOutSine},
	SineIn:     {"sine_in", ease.InSine},
	SineOut:    {"sine_out", ease.OutSine},
	Expo:       {"expo", ease.InOutExpo},
	ExpoIn:     {"expo_in", ease.InExpo},
	ExpoOut:    {"expo_out", ease.OutExpo},
	Circ:       {"circ", ease.InOutCirc},
	CircIn:     {"circ_in", ease.InCirc},
	CircOut:    {"circ_out", ease.OutCirc},
	Elastic:    {"elastic", ease.InOutElastic},
	ElasticIn:  {"elastic_in", ease.InElastic},
	ElasticOut: {"elastic_out", ease.OutElastic},
	Back:       {"back", ease.InOutBack},
	BackIn:     {"back_in", ease.InBack},
	BackOut:    {"back_out", ease.OutBack},
	Bounce:     {"bounce", ease.InOutBounce},
	BounceIn:   {"bounce_in", ease.InBounce},
	BounceOut:  {"bounce_out", ease.OutBounce},
}

// Apply maps linear progress t to eased progress. t is clamped to [0,1] and
// the end points are pinned so every curve lands exactly on its target.
func (e Easing) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e < 0 || int(e) >= len(table) {
		return t
	}
	return table[e].fn(t)
}

func (e Easing) String() string {
	if e < 0 || int(e) >= len(table) {
		return fmt.Sprintf("easing(%d)", int(e))
	}
	return table[e].name
}

// Parse resolves a curve name such as "bounce_out" or "BounceOut".
func Parse(name string) (Easing, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Linear, nil
	}
	for i, entry := range table {
		if entry.name == key || strings.ReplaceAll(entry.name, "_", "") == key {
			return Easing(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// MarshalYAML writes the curve name.
func (e Easing) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

// UnmarshalYAML accepts a curve name.
func (e *Easing) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
