package scenes

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the locomotion rig against a stand-in kinematic sink so
// the binary has something visible to show. The sink is not part of the
// mapping contract - a real integration hands the rig a physics
// character controller instead.
type WorldScene struct {
	ecs     *ecs.ECS
	xr      bool
	runtime *systems.XRRuntime
	sink    *kinematicSink
	once    sync.Once
}

// NewWorldScene creates the demo scene. runtime is required in headset
// mode and ignored otherwise.
func NewWorldScene(xr bool, runtime *systems.XRRuntime) *WorldScene {
	return &WorldScene{xr: xr, runtime: runtime}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.sink.beginFrame()
	ws.ecs.Update()
	ws.sink.step()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ws.sink == nil {
		return
	}

	mode := "flat"
	if ws.xr {
		mode = "headset"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("mode: %s", mode), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("position: (%6.2f, %6.2f, %6.2f)",
		ws.sink.pos.X(), ws.sink.pos.Y(), ws.sink.pos.Z()), 8, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("desired velocity: (%5.2f, %5.2f)",
		ws.sink.desired.X(), ws.sink.desired.Z()), 8, 40)
	if !ws.sink.fed {
		ebitenutil.DebugPrintAt(screen, "no command this frame (reference frame unavailable)", 8, 56)
	}
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())
	ws.sink = &kinematicSink{pos: mgl32.Vec3{0, cfg.Locomotion.FloatHeight, 0}}

	// Fixed per-tick order: sample -> orient -> resolve/map -> demo sync.
	if ws.xr {
		e.AddSystem(systems.UpdateXRInput(ws.runtime))
		e.AddSystem(systems.UpdateTurn)
		e.AddSystem(systems.UpdateLocomotion(systems.HeadsetBasis{}))
		factory.CreateXRRig(e, ws.sink)
	} else {
		e.AddSystem(systems.UpdateInput)
		e.AddSystem(systems.UpdateLook)
		e.AddSystem(systems.UpdateLocomotion(systems.FlatBasis{}))
		factory.CreateRig(e, ws.sink)
	}
	e.AddSystem(ws.syncTransform)

	ws.ecs = e
}

// syncTransform mirrors the sink's integrated position back onto the rig
// transform so the overlay can display it.
func (ws *WorldScene) syncTransform(e *ecs.ECS) {
	entry, ok := components.Transform.First(e.World)
	if !ok {
		return
	}
	components.Transform.Get(entry).Position = ws.sink.pos
}

const gravity = 9.81

// kinematicSink integrates the commands it is fed, with a crude
// float-height hover and ballistic jumps. It also demonstrates the
// contract's debounce split: Jump arrives every held frame and the sink
// ignores repeats until the character lands.
type kinematicSink struct {
	pos      mgl32.Vec3
	desired  mgl32.Vec3
	floatSet float32
	vertVel  float32
	airborne bool
	fed      bool
}

func (k *kinematicSink) beginFrame() {
	k.fed = false
}

func (k *kinematicSink) Feed(cmd components.Command) {
	k.desired = cmd.DesiredVelocity
	k.floatSet = cmd.FloatHeight
	k.fed = true
}

func (k *kinematicSink) Jump(height float32) {
	if k.airborne {
		return
	}
	k.vertVel = float32(math.Sqrt(float64(2 * gravity * height)))
	k.airborne = true
}

func (k *kinematicSink) step() {
	const dt = 1.0 / 60.0

	// Without a command this frame there is no basis to walk on; the
	// character keeps only its own state (and keeps falling if airborne).
	if k.fed {
		k.pos = k.pos.Add(mgl32.Vec3{k.desired.X() * dt, 0, k.desired.Z() * dt})
	}

	if k.airborne {
		k.vertVel -= gravity * dt
		k.pos[1] += k.vertVel * dt
		if k.pos.Y() <= k.floatSet && k.vertVel <= 0 {
			k.pos[1] = k.floatSet
			k.vertVel = 0
			k.airborne = false
		}
	} else if k.fed {
		k.pos[1] = k.floatSet
	}
}
