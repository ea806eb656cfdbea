package systems

import (
	"log"

	"github.com/decker502/fireworks/pkg/components"
)

// RevealSystem drives the four-step gift box sequence.
//
// The first click moves the box to step 1 and detaches the click handler;
// every later step is entered after the previous step's delay. Entering the
// last step calls onReveal exactly once.
type RevealSystem struct {
	box      *components.GiftBoxComponent
	onReveal func()
}

// NewRevealSystem arms the click handler of box and returns the system.
func NewRevealSystem(box *components.GiftBoxComponent, onReveal func()) *RevealSystem {
	box.Step = components.RevealIdle
	box.StepElapsed = 0
	box.ClickArmed = true
	box.Revealed = false
	return &RevealSystem{
		box:      box,
		onReveal: onReveal,
	}
}

// Click handles a click on the gift box. It returns false once the handler
// has been detached.
func (rs *RevealSystem) Click() bool {
	if !rs.box.ClickArmed {
		return false
	}
	rs.box.ClickArmed = false
	log.Printf("[Reveal] Gift box clicked, starting sequence")
	rs.enter(components.RevealShake)
	return true
}

// Skip jumps straight to the final step (used by -skip-reveal).
func (rs *RevealSystem) Skip() {
	rs.box.ClickArmed = false
	rs.enter(components.RevealDone)
}

// Update advances the sequence by dt seconds. A large dt may cross several
// steps at once; the leftover time carries into the next step.
func (rs *RevealSystem) Update(dt float64) {
	box := rs.box
	if box.Step == components.RevealIdle || box.Step == components.RevealDone {
		return
	}

	box.StepElapsed += dt
	for box.Step != components.RevealDone {
		delay := rs.delay(box.Step)
		if box.StepElapsed < delay {
			return
		}
		box.StepElapsed -= delay
		rs.enter(box.Step + 1)
	}
}

// Progress returns how far the current step is through its delay, in [0, 1].
func (rs *RevealSystem) Progress() float64 {
	box := rs.box
	if box.Step == components.RevealIdle {
		return 0
	}
	if box.Step == components.RevealDone {
		return 1
	}
	delay := rs.delay(box.Step)
	if delay <= 0 {
		return 1
	}
	p := box.StepElapsed / delay
	if p > 1 {
		return 1
	}
	return p
}

// Step returns the current step.
func (rs *RevealSystem) Step() components.RevealStep {
	return rs.box.Step
}

func (rs *RevealSystem) delay(step components.RevealStep) float64 {
	i := int(step) - 1
	if i < 0 || i >= len(rs.box.StepDelays) {
		return 0
	}
	return rs.box.StepDelays[i]
}

func (rs *RevealSystem) enter(step components.RevealStep) {
	rs.box.Step = step
	if step != components.RevealDone {
		log.Printf("[Reveal] Entered %s", step)
		return
	}

	rs.box.StepElapsed = 0
	if rs.box.Revealed {
		return
	}
	rs.box.Revealed = true
	log.Printf("[Reveal] Entered %s, revealing", step)
	if rs.onReveal != nil {
		rs.onReveal()
	}
}
