package systems

import (
	"math/rand"

	"github.com/decker502/fireworks/pkg/components"
	"github.com/decker502/fireworks/pkg/config"
)

// EmitSparks appends one burst of cfg.Count sparks at (x, y) and returns the
// extended slice. Existing sparks are left untouched.
func EmitSparks(sparks []*components.Spark, rng *rand.Rand, cfg config.SparkConfig, x, y, hue float64) []*components.Spark {
	for i := 0; i < cfg.Count; i++ {
		sparks = append(sparks, NewSpark(rng, cfg, x, y, hue))
	}
	return sparks
}
