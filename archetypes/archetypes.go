package archetypes

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Rig is the flat-mode controlled character: mouse look drives the
	// view transform, and the camera orientation is the reference frame.
	Rig = newArchetype(
		tags.Rig,
		components.Orientation,
		components.Transform,
		components.FrameInput,
		components.Controller,
	)
	// XRRig is the headset-mode controlled character: the tracked view
	// pose is the reference frame, so there is no mouse-look orientation.
	XRRig = newArchetype(
		tags.Rig,
		components.Transform,
		components.FrameInput,
		components.Controller,
		components.HeadsetPose,
		components.TurnState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
