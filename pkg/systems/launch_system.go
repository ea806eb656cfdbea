package systems

import (
	"math/rand"

	"github.com/decker502/fireworks/pkg/utils"
)

// LaunchSystem decides when a new projectile leaves the launch point.
//
// It keeps two independent tick counters. The autonomous timer fires every
// AutoThreshold ticks while the pointer is up; the limiter caps pointer-driven
// launches to one per PointerThreshold ticks while the pointer is held down.
// A counter that reaches its threshold stays there until its condition holds,
// so releasing the pointer after a long hold launches on the very next tick.
type LaunchSystem struct {
	AutoThreshold    int
	PointerThreshold int

	autoTick    int
	pointerTick int
}

// LaunchOrder is a launch decided for this tick.
type LaunchOrder struct {
	TargetX, TargetY float64
	// FromPointer is true when the target came from the pointer position.
	FromPointer bool
}

// NewLaunchSystem creates a launch system with both counters at zero.
func NewLaunchSystem(autoThreshold, pointerThreshold int) *LaunchSystem {
	return &LaunchSystem{
		AutoThreshold:    autoThreshold,
		PointerThreshold: pointerThreshold,
	}
}

// Update advances both counters by one tick and returns the launches due.
//
// Autonomous targets are uniform over the full width and the upper half of
// the surface. At most one order is returned per tick because the two
// counters require opposite pointer states.
func (ls *LaunchSystem) Update(rng *rand.Rand, pointer PointerState, width, height float64) []LaunchOrder {
	var orders []LaunchOrder

	if ls.autoTick < ls.AutoThreshold {
		ls.autoTick++
	}
	if ls.autoTick >= ls.AutoThreshold && !pointer.Down {
		orders = append(orders, LaunchOrder{
			TargetX: utils.RandomInRange(rng, 0, width),
			TargetY: utils.RandomInRange(rng, 0, height/2),
		})
		ls.autoTick = 0
	}

	if ls.pointerTick < ls.PointerThreshold {
		ls.pointerTick++
	}
	if ls.pointerTick >= ls.PointerThreshold && pointer.Down {
		orders = append(orders, LaunchOrder{
			TargetX:     pointer.X,
			TargetY:     pointer.Y,
			FromPointer: true,
		})
		ls.pointerTick = 0
	}

	return orders
}

// Counters returns the current (autonomous, pointer) tick counters.
func (ls *LaunchSystem) Counters() (auto, pointer int) {
	return ls.autoTick, ls.pointerTick
}
