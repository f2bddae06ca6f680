package meshtext

import (
	"math/rand/v2"
	"time"

	"github.com/gogpu/meshtext/mesh"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Deterministic animation scatter for tests:
//	rng := rand.New(rand.NewPCG(1, 2))
//	eng := meshtext.New(st, meshtext.WithRand(rng))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	layoutWidth  float32
	rng          *rand.Rand
	scatter      mesh.Box3
	animDelay    time.Duration
	animDuration time.Duration
}

// defaultEngineOptions returns the default engine options. The rng is
// left nil here and seeded from the clock in New, so each engine gets
// its own sequence unless one is injected.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		layoutWidth:  DefaultLayoutWidth,
		scatter:      DefaultScatterVolume(),
		animDelay:    DefaultAnimationDelay,
		animDuration: DefaultAnimationDuration,
	}
}

// WithLayoutWidth sets the horizontal span available for a line. The
// margins sit symmetrically at ±width/2 around x=0. Widths <= 0 are
// ignored.
func WithLayoutWidth(width float32) Option {
	return func(o *engineOptions) {
		if width > 0 {
			o.layoutWidth = width
		}
	}
}

// WithRand injects the random source used for animation start
// positions. Injecting a seeded source makes animated layouts
// deterministic, which tests rely on.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

// WithScatterVolume sets the bounding volume animated glyphs start
// inside. Empty boxes are ignored.
func WithScatterVolume(box mesh.Box3) Option {
	return func(o *engineOptions) {
		if !box.IsEmpty() {
			o.scatter = box
		}
	}
}

// WithAnimationTiming sets the delay before animated glyphs start
// moving and their travel time. Non-positive values keep the defaults.
func WithAnimationTiming(delay, duration time.Duration) Option {
	return func(o *engineOptions) {
		if delay > 0 {
			o.animDelay = delay
		}
		if duration > 0 {
			o.animDuration = duration
		}
	}
}
