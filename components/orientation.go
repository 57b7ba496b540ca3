package components

import (
	"github.com/yohamta/donburi"
)

// OrientationData is the look controller's state, in degrees.
// Yaw is unbounded and wraps through the rotation math; pitch is kept
// within the configured limit by the look system.
type OrientationData struct {
	Yaw   float32
	Pitch float32
}

var Orientation = donburi.NewComponentType[OrientationData]()
