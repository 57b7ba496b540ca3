package config

// ActionKind is the declared value type of a logical XR action.
type ActionKind int

const (
	ActionBool ActionKind = iota
	ActionFloat
	ActionVec2
)

// Logical action names resolved through the XR registry.
const (
	XRActionFlight = "flight_input"
	XRActionJump   = "jump"
	XRActionTurn   = "turn_input"
)

// Hardware interaction profiles the registry declares bindings for.
const (
	ProfileOculusTouch = "/interaction_profiles/oculus/touch_controller"
	ProfileValveIndex  = "/interaction_profiles/valve/index_controller"
)

// XRActionSet declares a named group of actions with a resolution priority.
type XRActionSet struct {
	Name        string
	DisplayName string
	Priority    int
}

// XRAction declares one logical action within a set.
type XRAction struct {
	Set         string
	Name        string
	DisplayName string
	Kind        ActionKind
}

// XRBinding maps one hardware input path to a logical action. Multiple
// profiles may bind the same action.
type XRBinding struct {
	Profile string
	Path    string
	Action  string
}

// XRActionSets, XRActions and XRBindings are the global XR declarations,
// built once into the registry's lookup table at startup.
var XRActionSets []XRActionSet
var XRActions []XRAction
var XRBindings []XRBinding

func init() {
	XRActionSets = []XRActionSet{
		{Name: "locomotion", DisplayName: "Locomotion", Priority: 0},
	}
	XRActions = []XRAction{
		{Set: "locomotion", Name: XRActionFlight, DisplayName: "Flight Input", Kind: ActionVec2},
		{Set: "locomotion", Name: XRActionJump, DisplayName: "Jump", Kind: ActionBool},
		{Set: "locomotion", Name: XRActionTurn, DisplayName: "Snap Turn", Kind: ActionFloat},
	}
	XRBindings = []XRBinding{
		{Profile: ProfileOculusTouch, Path: "/user/hand/left/input/thumbstick", Action: XRActionFlight},
		{Profile: ProfileOculusTouch, Path: "/user/hand/right/input/a/click", Action: XRActionJump},
		{Profile: ProfileOculusTouch, Path: "/user/hand/right/input/thumbstick/x", Action: XRActionTurn},
		{Profile: ProfileValveIndex, Path: "/user/hand/left/input/thumbstick", Action: XRActionFlight},
		{Profile: ProfileValveIndex, Path: "/user/hand/right/input/a/click", Action: XRActionJump},
		{Profile: ProfileValveIndex, Path: "/user/hand/right/input/thumbstick/x", Action: XRActionTurn},
	}
}
