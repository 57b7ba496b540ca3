package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all entities spawn into.
const Default ecs.LayerID = 0

// MouseConfig contains the look controller tunables.
// Sensitivity is in degrees per raw input unit.
type MouseConfig struct {
	Sensitivity float32
	PitchLimit  float32 // degrees, applied symmetrically
}

// LocomotionConfig contains the walk command tunables.
type LocomotionConfig struct {
	// MaxSpeed scales the mapped intent vector, in units per second.
	MaxSpeed float32
	// FloatHeight must exceed the vertical half-extent of the character's
	// collision shape or the controller will never find the ground.
	FloatHeight float32
	JumpHeight  float32
}

// TurnConfig contains the headset-mode snap turn tunables.
type TurnConfig struct {
	// Threshold is how far the turn axis must deflect to trigger a step.
	Threshold float32
	// StepDegrees is the yaw applied per flick.
	StepDegrees float32
	// Duration is the ease time per step, in seconds.
	Duration float32
}

// WindowConfig contains the demo window dimensions.
type WindowConfig struct {
	Width  int
	Height int
}

// Mouse is the global mouse configuration. Set once at startup
// (defaults, then optional file and saved-settings overrides), read-only
// during the frame loop.
var Mouse MouseConfig

// Locomotion is the global locomotion configuration.
var Locomotion LocomotionConfig

// Turn is the global snap turn configuration.
var Turn TurnConfig

// Window is the global window configuration.
var Window WindowConfig

func init() {
	Mouse = MouseConfig{
		Sensitivity: 0.04,
		PitchLimit:  90.0,
	}
	Locomotion = LocomotionConfig{
		MaxSpeed:    5.0,
		FloatHeight: 1.1,
		JumpHeight:  2.0,
	}
	Turn = TurnConfig{
		Threshold:   0.6,
		StepDegrees: 45.0,
		Duration:    0.2,
	}
	Window = WindowConfig{
		Width:  1280,
		Height: 720,
	}
}
