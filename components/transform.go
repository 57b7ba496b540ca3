package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData is the controlled view entity's pose. Rotation is written
// only by the look system; Position only by the demo sync.
type TransformData struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Forward returns the view's forward vector (+Z at identity).
func (t *TransformData) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

var Transform = donburi.NewComponentType[TransformData]()
