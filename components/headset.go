package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// HeadsetPoseData is the first available view pose reported by the XR
// runtime this frame. Valid is false when tracking produced no view, in
// which case locomotion skips the frame rather than substituting zero.
type HeadsetPoseData struct {
	Orientation mgl32.Quat
	Valid       bool
}

var HeadsetPose = donburi.NewComponentType[HeadsetPoseData]()
