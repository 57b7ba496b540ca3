package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newFlatRig(sink components.Sink) (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	rig := factory.CreateRig(e, sink)
	return e, rig
}

func setMouseDelta(rig *donburi.Entry, dx, dy float32) {
	in := components.FrameInput.Get(rig)
	in.MouseDelta = mgl32.Vec2{dx, dy}
}

func TestLookPitchNeverExceedsLimit(t *testing.T) {
	e, rig := newFlatRig(nil)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		setMouseDelta(rig, float32(rng.Float64()*400-200), float32(rng.Float64()*400-200))
		UpdateLook(e)

		pitch := components.Orientation.Get(rig).Pitch
		assert.LessOrEqual(t, pitch, cfg.Mouse.PitchLimit)
		assert.GreaterOrEqual(t, pitch, -cfg.Mouse.PitchLimit)
	}
}

func TestLookPitchSaturatesAtLimit(t *testing.T) {
	e, rig := newFlatRig(nil)

	// A single enormous downward drag pins the pitch at the limit while
	// yaw keeps integrating freely.
	setMouseDelta(rig, 100000, -100000)
	UpdateLook(e)

	o := components.Orientation.Get(rig)
	assert.InDelta(t, float64(cfg.Mouse.PitchLimit), float64(o.Pitch), 1e-4)
	assert.InDelta(t, float64(-100000*cfg.Mouse.Sensitivity), float64(o.Yaw), 1e-2)
}

func TestLookZeroDeltaMutatesNothing(t *testing.T) {
	e, rig := newFlatRig(nil)

	setMouseDelta(rig, 25, -10)
	UpdateLook(e)
	before := *components.Orientation.Get(rig)
	beforeRot := components.Transform.Get(rig).Rotation

	setMouseDelta(rig, 0, 0)
	UpdateLook(e)

	assert.Equal(t, before, *components.Orientation.Get(rig))
	assert.Equal(t, beforeRot, components.Transform.Get(rig).Rotation)
}

func TestLookWritesComposedRotation(t *testing.T) {
	e, rig := newFlatRig(nil)

	setMouseDelta(rig, 10, 5)
	UpdateLook(e)

	o := components.Orientation.Get(rig)
	require.InDelta(t, -0.4, float64(o.Yaw), 1e-5)
	require.InDelta(t, -0.2, float64(o.Pitch), 1e-5)

	want := mgl32.QuatRotate(mgl32.DegToRad(o.Yaw), mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(o.Pitch), mgl32.Vec3{1, 0, 0}))
	got := components.Transform.Get(rig).Rotation
	for _, axis := range []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		w, g := want.Rotate(axis), got.Rotate(axis)
		assert.InDelta(t, float64(w.X()), float64(g.X()), 1e-5)
		assert.InDelta(t, float64(w.Y()), float64(g.Y()), 1e-5)
		assert.InDelta(t, float64(w.Z()), float64(g.Z()), 1e-5)
	}
}

func TestLookSkipsWithoutRig(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	assert.NotPanics(t, func() { UpdateLook(e) })
}
