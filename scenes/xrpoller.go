package scenes

import (
	"github.com/automoto/strider/actions"
	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// GamepadPoller adapts a standard-layout gamepad into the action runtime
// contract so headset mode can run without an HMD: the left stick stands
// in for the flight thumbstick, the right stick X for the turn axis, and
// the view pose is identity while a gamepad is connected. Only the touch
// controller profile's paths respond, so registry resolution exercises
// the multi-profile fallthrough. Unplugging the gamepad drops the view
// pose, which makes locomotion skip frames until it returns.
type GamepadPoller struct {
	ids []ebiten.GamepadID
}

func NewGamepadPoller() *GamepadPoller {
	return &GamepadPoller{}
}

func (p *GamepadPoller) pad() (ebiten.GamepadID, bool) {
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	for _, id := range p.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func (p *GamepadPoller) Poll(profile, path string) (actions.State, bool) {
	if profile != cfg.ProfileOculusTouch {
		return actions.State{}, false
	}
	gp, ok := p.pad()
	if !ok {
		return actions.State{}, false
	}

	switch path {
	case "/user/hand/left/input/thumbstick":
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		// Stick right is a negative world-X intent, stick up a positive
		// world-Z one, matching the desktop key mapping.
		return actions.Vec2State(mgl32.Vec2{float32(-h), float32(-v)}), true
	case "/user/hand/right/input/a/click":
		held := ebiten.IsStandardGamepadButtonPressed(gp, ebiten.StandardGamepadButtonRightBottom)
		return actions.BoolState(held), true
	case "/user/hand/right/input/thumbstick/x":
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisRightStickHorizontal)
		return actions.FloatState(float32(h)), true
	}
	return actions.State{}, false
}

func (p *GamepadPoller) ViewPose() (mgl32.Quat, bool) {
	if _, ok := p.pad(); !ok {
		return mgl32.Quat{}, false
	}
	return mgl32.QuatIdent(), true
}
