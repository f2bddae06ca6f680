package meshtext

import (
	"time"

	"github.com/gogpu/meshtext/mesh"
)

// Default entry-animation timing. Every glyph of one layout uses the
// same delay and duration; only the start positions differ.
const (
	DefaultAnimationDelay    = 500 * time.Millisecond
	DefaultAnimationDuration = 1500 * time.Millisecond
)

// DefaultScatterVolume bounds the random start positions handed out for
// animated layouts.
func DefaultScatterVolume() mesh.Box3 {
	return mesh.B3(-4, -4, -4, 4, 4, 4)
}

// Animation is an entry animation from a scattered start position to
// the glyph's laid-out position. The engine only assigns the curve
// parameters; the renderer drives time and calls At each frame.
// Per-glyph animations are independent and complete in no defined order
// relative to each other.
type Animation struct {
	// From is the start position, drawn from the engine's scatter volume.
	From mesh.Vec3

	// To is the final laid-out position, equal to the glyph's Pos.
	To mesh.Vec3

	// Delay is how long the glyph holds at From before moving.
	Delay time.Duration

	// Duration is the travel time from From to To once moving.
	Duration time.Duration
}

// At returns the glyph position elapsed time after the animation was
// started. Before Delay has passed it returns From; after
// Delay+Duration it returns To; in between it eases out cubically.
func (a *Animation) At(elapsed time.Duration) mesh.Vec3 {
	moving := elapsed - a.Delay
	if moving <= 0 {
		return a.From
	}
	if moving >= a.Duration || a.Duration <= 0 {
		return a.To
	}
	t := float32(moving.Seconds() / a.Duration.Seconds())
	return a.From.Lerp(a.To, easeOutCubic(t))
}

// Done reports whether the animation has reached its final position.
func (a *Animation) Done(elapsed time.Duration) bool {
	return elapsed >= a.Delay+a.Duration
}

// easeOutCubic maps t in [0, 1] onto a cubic curve that starts fast and
// decelerates into the target.
func easeOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}
