package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// FrameInputData is the raw device sample for the current tick. Exactly
// one sampler system rebuilds it from scratch every frame; downstream
// systems only read it.
type FrameInputData struct {
	// MouseDelta is the accumulated cursor motion for the frame.
	MouseDelta mgl32.Vec2
	// Move is the movement intent: X is left(+)/right(-), Y is
	// forward(+)/back(-), matching the world X/Z axes at identity yaw.
	// Digital keys contribute unit steps and are deliberately not
	// normalized; diagonals come out longer than cardinals.
	Move mgl32.Vec2
	// JumpHeld is true every frame the jump input stays held.
	JumpHeld bool
	// TurnAxis is the snap-turn stick deflection in [-1, 1] (headset mode).
	TurnAxis float32
}

var FrameInput = donburi.NewComponentType[FrameInputData]()
