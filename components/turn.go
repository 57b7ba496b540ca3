package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TurnStateData tracks the snap-turn yaw offset composed on top of the
// headset pose, and the tween easing toward the latest step.
type TurnStateData struct {
	// OffsetDegrees is the accumulated yaw offset applied to the basis.
	OffsetDegrees float32
	// Active is the in-flight step tween, nil when idle.
	Active *gween.Tween
	// Centered is true once the turn axis has returned inside the
	// deadzone; a new step cannot trigger until it does.
	Centered bool
}

var TurnState = donburi.NewComponentType[TurnStateData]()
