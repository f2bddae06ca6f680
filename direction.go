package meshtext

import "github.com/chewxy/math32"

// Direction is a gesture direction tag. Swap acts on DirectionLeft and
// DirectionRight only; DirectionUp and DirectionDown are classified for
// callers but otherwise unused here.
type Direction uint8

const (
	// DirectionNone is the zero value, reported for a zero vector.
	DirectionNone Direction = iota
	// DirectionLeft moves a glyph toward the start of the text.
	DirectionLeft
	// DirectionRight moves a glyph toward the end of the text.
	DirectionRight
	// DirectionUp is reported but not acted on by edits.
	DirectionUp
	// DirectionDown is reported but not acted on by edits.
	DirectionDown
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// DirectionFromVector classifies a gesture displacement into one of the
// four cardinal directions. The plane is divided into four 90° quadrants
// whose boundaries are offset 45° from the axes. Y grows upward. A zero
// vector is DirectionNone.
func DirectionFromVector(dx, dy float32) Direction {
	if dx == 0 && dy == 0 {
		return DirectionNone
	}
	deg := math32.Atan2(dy, dx) * 180 / math32.Pi
	switch {
	case deg > -45 && deg <= 45:
		return DirectionRight
	case deg > 45 && deg <= 135:
		return DirectionUp
	case deg > -135 && deg <= -45:
		return DirectionDown
	default:
		return DirectionLeft
	}
}
