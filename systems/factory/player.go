package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRig spawns the flat-mode controlled character with its command
// sink attached. The view starts level, facing world +Z, hovering at the
// float height.
func CreateRig(ecs *ecs.ECS, sink components.Sink) *donburi.Entry {
	rig := archetypes.Rig.Spawn(ecs)

	components.Orientation.SetValue(rig, components.OrientationData{})
	components.Transform.SetValue(rig, components.TransformData{
		Position: mgl32.Vec3{0, cfg.Locomotion.FloatHeight, 0},
		Rotation: mgl32.QuatIdent(),
	})
	components.Controller.SetValue(rig, components.ControllerData{Sink: sink})

	return rig
}

// CreateXRRig spawns the headset-mode controlled character. The headset
// pose starts invalid, so locomotion skips frames until tracking reports
// a view.
func CreateXRRig(ecs *ecs.ECS, sink components.Sink) *donburi.Entry {
	rig := archetypes.XRRig.Spawn(ecs)

	components.Transform.SetValue(rig, components.TransformData{
		Position: mgl32.Vec3{0, cfg.Locomotion.FloatHeight, 0},
		Rotation: mgl32.QuatIdent(),
	})
	components.Controller.SetValue(rig, components.ControllerData{Sink: sink})
	components.HeadsetPose.SetValue(rig, components.HeadsetPoseData{
		Orientation: mgl32.QuatIdent(),
		Valid:       false,
	})
	components.TurnState.SetValue(rig, components.TurnStateData{Centered: true})

	return rig
}
