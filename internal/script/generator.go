package script

import (
	"fmt"
	"math/rand"

	"github.com/ivlev/animscene/internal/geom"
)

// Generator produces the demo scene as a script
type Generator struct {
	Width     int
	Height    int
	Dots      int     // Number of random circles
	MinRadius float64 // Smallest dot radius
	MaxRadius float64 // Largest dot radius
	Seed      int64
}

// NewGenerator creates a Generator with the demo defaults
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:     width,
		Height:    height,
		Dots:      600,
		MinRadius: 0.1,
		MaxRadius: 20,
		Seed:      1,
	}
}

// GenerateScript builds the demo: a field of dots drawn on and dropped to
// the bottom edge, then a circle, a rectangle and a greeting.
func (g *Generator) GenerateScript() (*Script, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", g.Width, g.Height)
	}

	r := rand.New(rand.NewSource(g.Seed))

	sc := &Script{
		Version: Version,
		Title:   "demo",
		Width:   g.Width,
		Height:  g.Height,
	}
	sc.Objects = append(sc.Objects, g.dotObjects(r)...)
	sc.Objects = append(sc.Objects,
		ObjectSpec{Name: "circle", Kind: "circle", Position: &geom.Point{X: 200, Y: -100}},
		ObjectSpec{Name: "square", Kind: "rectangle", Position: &geom.Point{X: 200, Y: 100}},
		ObjectSpec{Name: "greeting", Kind: "text", Text: "Hello!"},
	)

	sc.Steps = append(sc.Steps, g.dotSteps()...)
	sc.Steps = append(sc.Steps, g.finaleSteps()...)
	return sc, nil
}

// dotObjects scatters dots uniformly over the frame
func (g *Generator) dotObjects(r *rand.Rand) []ObjectSpec {
	halfW := float64(g.Width) / 2
	halfH := float64(g.Height) / 2

	objects := make([]ObjectSpec, 0, g.Dots)
	for i := 0; i < g.Dots; i++ {
		x := -halfW + r.Float64()*2*halfW
		y := -halfH + r.Float64()*2*halfH
		radius := g.MinRadius + r.Float64()*(g.MaxRadius-g.MinRadius)
		objects = append(objects, ObjectSpec{
			Name:     fmt.Sprintf("dot_%03d", i),
			Kind:     "circle",
			Radius:   radius,
			Position: &geom.Point{X: x, Y: y},
		})
	}
	return objects
}

func (g *Generator) dotSteps() []Step {
	if g.Dots == 0 {
		return nil
	}
	return []Step{
		WaitStep(1),
		{Play: &PlaySpec{Actions: []ActionSpec{{Target: "dot_*", Type: "show_creation"}}}},
		{Play: &PlaySpec{
			RateFunc: "bounce_out",
			Actions:  []ActionSpec{{Target: "dot_*", Type: "to_edge", Direction: "down"}},
		}},
	}
}

func (g *Generator) finaleSteps() []Step {
	play := func(rate string, a ActionSpec) Step {
		return Step{Play: &PlaySpec{RateFunc: rate, Actions: []ActionSpec{a}}}
	}
	return []Step{
		play("", ActionSpec{Target: "circle", Type: "show_creation"}),
		play("", ActionSpec{Target: "square", Type: "show_creation"}),
		play("bounce_out", ActionSpec{Target: "circle", Type: "set_radius", Value: 100}),
		play("quad", ActionSpec{Target: "square", Type: "set_height", Value: 100}),
		play("quint", ActionSpec{Target: "square", Type: "rotate_by", Value: 360 * 3}),
		play("", ActionSpec{Target: "greeting", Type: "show_creation"}),
	}
}
