package easing

import (
	"errors"
	"math"
	"testing"
)

func TestApplyEndpoints(t *testing.T) {
	for e := Linear; e <= BounceOut; e++ {
		t.Run(e.String(), func(t *testing.T) {
			if got := e.Apply(0); got != 0 {
				t.Errorf("Apply(0) = %f", got)
			}
			if got := e.Apply(1); got != 1 {
				t.Errorf("Apply(1) = %f", got)
			}
			if got := e.Apply(-0.5); got != 0 {
				t.Errorf("Apply(-0.5) = %f, want clamp to 0", got)
			}
			if got := e.Apply(3); got != 1 {
				t.Errorf("Apply(3) = %f, want clamp to 1", got)
			}
		})
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for _, v := range []float64{0.1, 0.25, 0.5, 0.9} {
		if got := Linear.Apply(v); math.Abs(got-v) > 1e-12 {
			t.Errorf("Linear.Apply(%f) = %f", v, got)
		}
	}
}

func TestQuadIsSymmetric(t *testing.T) {
	if got := Quad.Apply(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Quad.Apply(0.5) = %f, want 0.5", got)
	}
	if Quad.Apply(0.25) >= 0.25 {
		t.Error("In-out quad should start slower than linear")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Easing
	}{
		{"", Linear},
		{"linear", Linear},
		{"bounce_out", BounceOut},
		{"BounceOut", BounceOut},
		{" quint ", Quint},
		{"ELASTIC_IN", ElasticIn},
	}
	for _, tt := range tests {
		got, err := Parse(tt.name)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := Parse("wobble"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Expected ErrUnknown, got %v", err)
	}
}
