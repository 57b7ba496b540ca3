package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLook integrates the frame's mouse delta into the rig's yaw/pitch
// and writes the resulting view rotation. No motion this frame means no
// mutation at all, so the transform stays bit-identical. Only this system
// writes the view rotation.
func UpdateLook(e *ecs.ECS) {
	entry, ok := components.Orientation.First(e.World)
	if !ok {
		return
	}
	in := components.FrameInput.Get(entry)
	if in.MouseDelta == (mgl32.Vec2{}) {
		return
	}

	o := components.Orientation.Get(entry)
	o.Yaw -= in.MouseDelta.X() * cfg.Mouse.Sensitivity
	o.Pitch = mgl32.Clamp(
		o.Pitch-in.MouseDelta.Y()*cfg.Mouse.Sensitivity,
		-cfg.Mouse.PitchLimit,
		cfg.Mouse.PitchLimit,
	)

	t := components.Transform.Get(entry)
	t.Rotation = mgl32.QuatRotate(mgl32.DegToRad(o.Yaw), mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(o.Pitch), mgl32.Vec3{1, 0, 0}))
}
