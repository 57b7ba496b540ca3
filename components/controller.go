package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// Command is the per-frame walk contract handed to the character
// controller. It is rebuilt from scratch every frame and never diffed
// against the previous one.
type Command struct {
	DesiredVelocity mgl32.Vec3
	FloatHeight     float32
}

// Sink is the boundary to the external character controller. Feed must be
// called every frame, zero velocity included - the controller starts
// without a basis and free-falls until it is fed. Jump is called every
// frame the jump input is held; debouncing is the controller's concern.
type Sink interface {
	Feed(cmd Command)
	Jump(height float32)
}

// ControllerData attaches the command sink to the controlled rig.
type ControllerData struct {
	Sink Sink
}

var Controller = donburi.NewComponentType[ControllerData]()
