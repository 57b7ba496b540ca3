package actions

import (
	"testing"

	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePoller resolves bindings from a fixed table, standing in for the
// external action runtime.
type fakePoller struct {
	values map[string]State
	pose   *mgl32.Quat
}

func (p *fakePoller) Poll(profile, path string) (State, bool) {
	st, ok := p.values[profile+path]
	return st, ok
}

func (p *fakePoller) ViewPose() (mgl32.Quat, bool) {
	if p.pose == nil {
		return mgl32.Quat{}, false
	}
	return *p.pose, true
}

func testDecls() ([]cfg.XRActionSet, []cfg.XRAction, []cfg.XRBinding) {
	sets := []cfg.XRActionSet{{Name: "locomotion", DisplayName: "Locomotion", Priority: 0}}
	decls := []cfg.XRAction{
		{Set: "locomotion", Name: "flight_input", DisplayName: "Flight Input", Kind: cfg.ActionVec2},
		{Set: "locomotion", Name: "jump", DisplayName: "Jump", Kind: cfg.ActionBool},
	}
	binds := []cfg.XRBinding{
		{Profile: "/interaction_profiles/oculus/touch_controller", Path: "/user/hand/left/input/thumbstick", Action: "flight_input"},
		{Profile: "/interaction_profiles/valve/index_controller", Path: "/user/hand/left/input/thumbstick", Action: "flight_input"},
		{Profile: "/interaction_profiles/oculus/touch_controller", Path: "/user/hand/right/input/a/click", Action: "jump"},
	}
	return sets, decls, binds
}

func TestRegistryResolvesFirstActiveProfile(t *testing.T) {
	r, err := NewRegistry(testDecls())
	require.NoError(t, err)

	// Only the second bound profile reports a value; resolution must fall
	// through to it.
	p := &fakePoller{values: map[string]State{
		"/interaction_profiles/valve/index_controller/user/hand/left/input/thumbstick": Vec2State(mgl32.Vec2{0.5, -0.5}),
	}}
	r.Refresh(p)

	st, ok := r.Value("flight_input")
	require.True(t, ok)
	v, ok := st.AsVec2()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{0.5, -0.5}, v)
}

func TestRegistryInactiveWithoutBindings(t *testing.T) {
	r, err := NewRegistry(testDecls())
	require.NoError(t, err)

	r.Refresh(&fakePoller{values: map[string]State{}})

	_, ok := r.Value("flight_input")
	assert.False(t, ok)
	_, ok = r.Value("jump")
	assert.False(t, ok)
}

func TestRegistryUnknownActionName(t *testing.T) {
	r, err := NewRegistry(testDecls())
	require.NoError(t, err)
	_, ok := r.Value("grab")
	assert.False(t, ok)
}

func TestRegistryKindMismatchIsInactive(t *testing.T) {
	r, err := NewRegistry(testDecls())
	require.NoError(t, err)

	// The runtime reports a float where a vec2 was declared. That is a
	// malformed value, not a crash, and the action stays inactive.
	p := &fakePoller{values: map[string]State{
		"/interaction_profiles/oculus/touch_controller/user/hand/left/input/thumbstick": FloatState(0.7),
	}}
	r.Refresh(p)

	_, ok := r.Value("flight_input")
	assert.False(t, ok)
}

func TestRegistryValueClearedOnNextFrame(t *testing.T) {
	r, err := NewRegistry(testDecls())
	require.NoError(t, err)

	active := &fakePoller{values: map[string]State{
		"/interaction_profiles/oculus/touch_controller/user/hand/right/input/a/click": BoolState(true),
	}}
	r.Refresh(active)
	st, ok := r.Value("jump")
	require.True(t, ok)
	held, ok := st.AsBool()
	require.True(t, ok)
	assert.True(t, held)

	r.Refresh(&fakePoller{values: map[string]State{}})
	_, ok = r.Value("jump")
	assert.False(t, ok)
}

func TestRegistryHigherPrioritySetWinsNameCollision(t *testing.T) {
	sets := []cfg.XRActionSet{
		{Name: "base", Priority: 0},
		{Name: "override", Priority: 10},
	}
	decls := []cfg.XRAction{
		{Set: "base", Name: "jump", Kind: cfg.ActionBool},
		{Set: "override", Name: "jump", Kind: cfg.ActionFloat},
	}
	r, err := NewRegistry(sets, decls, nil)
	require.NoError(t, err)

	// Declaration order must not matter either.
	r2, err := NewRegistry(sets, []cfg.XRAction{decls[1], decls[0]}, nil)
	require.NoError(t, err)

	for _, reg := range []*Registry{r, r2} {
		assert.Equal(t, cfg.ActionFloat, reg.byName["jump"].decl.Kind)
	}
}

func TestRegistryRejectsDanglingDeclarations(t *testing.T) {
	sets, decls, binds := testDecls()

	_, err := NewRegistry(sets, decls, append(binds, cfg.XRBinding{
		Profile: "/interaction_profiles/oculus/touch_controller",
		Path:    "/user/hand/left/input/x/click",
		Action:  "grab",
	}))
	assert.Error(t, err)

	_, err = NewRegistry(sets, append(decls, cfg.XRAction{Set: "menus", Name: "pause", Kind: cfg.ActionBool}), nil)
	assert.Error(t, err)
}

func TestFromConfigBuilds(t *testing.T) {
	r, err := FromConfig()
	require.NoError(t, err)

	_, ok := r.Value(cfg.XRActionFlight)
	assert.False(t, ok, "actions start inactive before the first Refresh")
}

func TestStateAccessors(t *testing.T) {
	_, ok := BoolState(true).AsFloat()
	assert.False(t, ok)
	_, ok = FloatState(1).AsVec2()
	assert.False(t, ok)
	_, ok = Vec2State(mgl32.Vec2{1, 0}).AsBool()
	assert.False(t, ok)
}
