package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BasisResolver derives the reference frame that carries movement intent
// into world space. ok is false when no frame is available this tick, in
// which case the command for this frame is skipped entirely.
//
// Exactly one resolver is authoritative per scene; new input modalities
// add a new implementation here rather than a branch in the mapper.
type BasisResolver interface {
	Resolve(entry *donburi.Entry) (mgl32.Quat, bool)
}

// FlatBasis derives the frame from the view transform: the forward vector
// flattened to the ground plane, turned into a yaw-only rotation.
type FlatBasis struct{}

func (FlatBasis) Resolve(entry *donburi.Entry) (mgl32.Quat, bool) {
	if !entry.HasComponent(components.Transform) {
		return mgl32.QuatIdent(), false
	}
	t := components.Transform.Get(entry)
	forward, ok := gamemath.FlatForward(t.Rotation)
	if !ok {
		return mgl32.QuatIdent(), false
	}
	return gamemath.MovementRotation(forward), true
}

// HeadsetBasis derives the frame from the tracked view pose, composed
// with the snap-turn yaw offset. Resolution fails while tracking reports
// no view.
type HeadsetBasis struct{}

func (HeadsetBasis) Resolve(entry *donburi.Entry) (mgl32.Quat, bool) {
	if !entry.HasComponent(components.HeadsetPose) {
		return mgl32.QuatIdent(), false
	}
	pose := components.HeadsetPose.Get(entry)
	if !pose.Valid {
		return mgl32.QuatIdent(), false
	}
	q := pose.Orientation
	if entry.HasComponent(components.TurnState) {
		ts := components.TurnState.Get(entry)
		if ts.OffsetDegrees != 0 {
			q = mgl32.QuatRotate(mgl32.DegToRad(ts.OffsetDegrees), mgl32.Vec3{0, 1, 0}).Mul(q)
		}
	}
	return q, true
}

// UpdateLocomotion returns the mapper system: resolve the frame's basis,
// carry the movement intent through it and feed the sink. The command is
// fed every frame even at zero intent - the downstream controller
// free-falls without a basis. A failed resolution skips the frame; the
// next successful one self-heals.
func UpdateLocomotion(resolver BasisResolver) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Controller.First(e.World)
		if !ok {
			return
		}
		ctrl := components.Controller.Get(entry)
		if ctrl.Sink == nil || resolver == nil {
			return
		}

		basis, ok := resolver.Resolve(entry)
		if !ok {
			return
		}

		in := components.FrameInput.Get(entry)
		dir, ok := gamemath.RotateFlattened(basis, in.Move)
		if !ok {
			return
		}

		ctrl.Sink.Feed(components.Command{
			DesiredVelocity: dir.Mul(cfg.Locomotion.MaxSpeed),
			FloatHeight:     cfg.Locomotion.FloatHeight,
		})

		if in.JumpHeld {
			ctrl.Sink.Jump(cfg.Locomotion.JumpHeight)
		}
	}
}
