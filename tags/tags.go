package tags

import "github.com/yohamta/donburi"

var (
	Rig = donburi.NewTag().SetName("Rig")
)
