package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Previous cursor position for mouse-delta derivation. The first sampled
// frame has no previous position and reports a zero delta.
var prevCursorX, prevCursorY int
var cursorSeen bool

// UpdateInput polls the desktop devices and rebuilds the rig's FrameInput
// sample. Must run before UpdateLook and UpdateLocomotion in the system
// order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.FrameInput.First(e.World)
	if !ok {
		return
	}
	in := components.FrameInput.Get(entry)
	*in = components.FrameInputData{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Digital keys contribute unit steps on the world axes: forward is
	// +Z, left is +X. The sum is intentionally not normalized.
	var move mgl32.Vec2
	if actionHeld(cfg.ActionMoveForward) {
		move[1] += 1
	}
	if actionHeld(cfg.ActionMoveBack) {
		move[1] -= 1
	}
	if actionHeld(cfg.ActionMoveLeft) {
		move[0] += 1
	}
	if actionHeld(cfg.ActionMoveRight) {
		move[0] -= 1
	}

	// Analog left stick overrides the digital sum when deflected past the
	// deadzone. Stick right is a negative world-X intent, stick up (a
	// negative axis value) a positive world-Z one.
	if sx, sy, ok := leftStick(gamepadIDs); ok {
		move = mgl32.Vec2{float32(-sx), float32(-sy)}
	}

	mx, my := ebiten.CursorPosition()
	if cursorSeen {
		in.MouseDelta = mgl32.Vec2{float32(mx - prevCursorX), float32(my - prevCursorY)}
	}
	prevCursorX, prevCursorY = mx, my
	cursorSeen = true

	in.Move = move
	in.JumpHeld = actionHeld(cfg.ActionJump)
}

// actionHeld reports whether any key or gamepad button bound to the
// action is currently down.
func actionHeld(id cfg.ActionID) bool {
	binding := cfg.Input.Bindings[id]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// leftStick reads the first standard-layout gamepad's left stick.
// ok is false when no stick is deflected past the deadzone.
func leftStick(gamepads []ebiten.GamepadID) (x, y float64, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v > deadzone*deadzone {
			return h, v, true
		}
	}
	return 0, 0, false
}
