package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/fireworks/pkg/components"
	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/utils"
)

// NewProjectile creates a projectile flying from (originX, originY) to
// (targetX, targetY).
//
// The launch angle comes from math.Atan2, which is defined for a zero vector,
// so origin == target is safe and simply arrives on the first advance.
func NewProjectile(rng *rand.Rand, cfg config.ProjectileConfig, originX, originY, targetX, targetY float64) *components.Projectile {
	return &components.Projectile{
		X:                originX,
		Y:                originY,
		OriginX:          originX,
		OriginY:          originY,
		TargetX:          targetX,
		TargetY:          targetY,
		DistanceToTarget: utils.Distance(originX, originY, targetX, targetY),
		DistanceTraveled: 0,
		Angle:            math.Atan2(targetY-originY, targetX-originX),
		Speed:            cfg.InitialSpeed,
		Acceleration:     cfg.Acceleration,
		Brightness:       utils.RandomInRange(rng, cfg.Brightness.Min, cfg.Brightness.Max),
		TargetRadius:     1,
		TargetRadiusStep: cfg.TargetRadiusStep,
		TargetRadiusMax:  cfg.TargetRadiusMax,
		Trail:            components.NewTrail(cfg.TrailLength, originX, originY),
	}
}

// AdvanceProjectile moves the projectile by one tick and reports whether it
// has reached its target.
//
// The arrival check measures the distance to the position the projectile
// would occupy after this tick, so it stops one step early instead of
// overshooting. An arrived projectile does not move; the caller emits sparks
// at the target and drops it.
func AdvanceProjectile(p *components.Projectile) (arrived bool) {
	p.Trail.Push(p.X, p.Y)

	if p.TargetRadius < p.TargetRadiusMax {
		p.TargetRadius += p.TargetRadiusStep
	} else {
		p.TargetRadius = 1
	}

	p.Speed *= p.Acceleration

	vx := math.Cos(p.Angle) * p.Speed
	vy := math.Sin(p.Angle) * p.Speed
	p.DistanceTraveled = utils.Distance(p.OriginX, p.OriginY, p.X+vx, p.Y+vy)

	if p.DistanceTraveled >= p.DistanceToTarget {
		return true
	}

	p.X += vx
	p.Y += vy
	return false
}

// RenderProjectile draws the rising trail and the pulsing target marker.
func RenderProjectile(s Surface, p *components.Projectile, hue float64) {
	clr := utils.HSL(hue, 100, p.Brightness)
	tail := p.Trail.Oldest()
	s.StrokeLine(tail.X, tail.Y, p.X, p.Y, clr)
	s.StrokeCircle(p.TargetX, p.TargetY, p.TargetRadius, clr)
}
