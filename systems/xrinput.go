package systems

import (
	"github.com/automoto/strider/actions"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/yohamta/donburi/ecs"
)

// XRRuntime pairs the action registry with the external runtime that
// resolves bindings and reports the view pose.
type XRRuntime struct {
	Registry *actions.Registry
	Poller   actions.Poller
}

// UpdateXRInput returns the headset-mode sampler system: it refreshes the
// registry, rebuilds the rig's FrameInput from the resolved logical
// actions and records the frame's view pose. Mutually exclusive with
// UpdateInput - a scene wires exactly one sampler.
func UpdateXRInput(rt *XRRuntime) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if rt == nil || rt.Registry == nil || rt.Poller == nil {
			return
		}
		entry, ok := components.FrameInput.First(e.World)
		if !ok {
			return
		}

		rt.Registry.Refresh(rt.Poller)

		in := components.FrameInput.Get(entry)
		*in = components.FrameInputData{}
		if st, ok := rt.Registry.Value(cfg.XRActionFlight); ok {
			if v, ok := st.AsVec2(); ok {
				in.Move = v
			}
		}
		if st, ok := rt.Registry.Value(cfg.XRActionJump); ok {
			if b, ok := st.AsBool(); ok {
				in.JumpHeld = b
			}
		}
		if st, ok := rt.Registry.Value(cfg.XRActionTurn); ok {
			if f, ok := st.AsFloat(); ok {
				in.TurnAxis = f
			}
		}

		if !entry.HasComponent(components.HeadsetPose) {
			return
		}
		pose := components.HeadsetPose.Get(entry)
		if q, ok := rt.Poller.ViewPose(); ok {
			pose.Orientation = q
			pose.Valid = true
		} else {
			pose.Valid = false
		}
	}
}
