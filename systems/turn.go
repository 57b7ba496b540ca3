package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Ticks are fixed-rate; tweens advance by one tick's worth of time.
const tickSeconds = 1.0 / 60.0

// UpdateTurn drives the snap turn from the turn axis: a flick past the
// threshold eases the yaw offset by one step, and the stick must return
// inside the deadzone before the next step can trigger. Runs only in
// headset mode (the flat rig has no TurnState).
func UpdateTurn(e *ecs.ECS) {
	entry, ok := components.TurnState.First(e.World)
	if !ok {
		return
	}
	ts := components.TurnState.Get(entry)
	in := components.FrameInput.Get(entry)

	if ts.Active != nil {
		v, finished := ts.Active.Update(tickSeconds)
		ts.OffsetDegrees = v
		if finished {
			ts.Active = nil
		}
	}

	if in.TurnAxis > -cfg.Turn.Threshold && in.TurnAxis < cfg.Turn.Threshold {
		ts.Centered = true
		return
	}
	if !ts.Centered || ts.Active != nil {
		return
	}

	// Stick right turns clockwise, which is a negative yaw step.
	step := cfg.Turn.StepDegrees
	if in.TurnAxis > 0 {
		step = -step
	}
	ts.Active = gween.New(ts.OffsetDegrees, ts.OffsetDegrees+step, cfg.Turn.Duration, ease.OutQuad)
	ts.Centered = false
}
