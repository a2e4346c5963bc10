package action

import (
	"fmt"
	"strings"

	"github.com/ivlev/animscene/internal/geom"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// DirectionOf maps one of the unit axis vectors to its Direction.
func DirectionOf(v geom.Vector) (Direction, bool) {
	switch v {
	case geom.Up:
		return Up, true
	case geom.Down:
		return Down, true
	case geom.Left:
		return Left, true
	case geom.Right:
		return Right, true
	}
	return 0, false
}

// MustDirection is DirectionOf for call sites where anything other than an
// axis vector is a programming error.
func MustDirection(v geom.Vector) Direction {
	d, ok := DirectionOf(v)
	if !ok {
		panic(fmt.Sprintf("invalid direction %v: must be one of Up/Down/Left/Right", v))
	}
	return d
}

// ParseDirection accepts "up", "down", "left" or "right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

// Target moves one coordinate of p to the edge named by d, pulled in by
// buffer. The other coordinate is kept.
func (d Direction) Target(p geom.Point, res Resource, buffer float64) geom.Point {
	switch d {
	case Up:
		p.Y = res.EdgeUpper() - buffer
	case Down:
		p.Y = res.EdgeLower() + buffer
	case Right:
		p.X = res.EdgeRight() - buffer
	case Left:
		p.X = res.EdgeLeft() + buffer
	default:
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}
	return p
}
