package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/fireworks/pkg/components"
	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/utils"
)

// NewSpark creates one ember at (x, y). Its hue is picked within
// ±cfg.HueSpread of the ambient hue.
func NewSpark(rng *rand.Rand, cfg config.SparkConfig, x, y, hue float64) *components.Spark {
	return &components.Spark{
		X:          x,
		Y:          y,
		Angle:      utils.RandomInRange(rng, 0, 2*math.Pi),
		Speed:      utils.RandomInRange(rng, cfg.Speed.Min, cfg.Speed.Max),
		Friction:   cfg.Friction,
		Gravity:    cfg.Gravity,
		Hue:        utils.RandomInRange(rng, hue-cfg.HueSpread, hue+cfg.HueSpread),
		Brightness: utils.RandomInRange(rng, cfg.Brightness.Min, cfg.Brightness.Max),
		Alpha:      1,
		Decay:      utils.RandomInRange(rng, cfg.Decay.Min, cfg.Decay.Max),
		Trail:      components.NewTrail(cfg.TrailLength, x, y),
	}
}

// AdvanceSpark moves the spark by one tick and reports whether it has faded
// out. A spark expires once its alpha drops to its own decay rate, one tick
// before it would reach zero.
func AdvanceSpark(s *components.Spark) (expired bool) {
	s.Trail.Push(s.X, s.Y)

	s.Speed *= s.Friction
	s.X += math.Cos(s.Angle) * s.Speed
	s.Y += math.Sin(s.Angle)*s.Speed + s.Gravity

	s.Alpha -= s.Decay

	return s.Alpha <= s.Decay
}

// RenderSpark draws the spark's trail segment at its current opacity.
func RenderSpark(surface Surface, s *components.Spark) {
	tail := s.Trail.Oldest()
	surface.StrokeLine(tail.X, tail.Y, s.X, s.Y, utils.HSLA(s.Hue, 100, s.Brightness, s.Alpha))
}
