// Package actions builds the declarative XR action tables into an
// immutable lookup keyed by logical action name, and resolves each
// action's current value once per frame through the external runtime.
package actions

import (
	"fmt"

	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the resolved value of a logical action for the current frame.
// Exactly one of the value fields is meaningful, selected by Kind.
type State struct {
	Kind  cfg.ActionKind
	Bool  bool
	Float float32
	Vec   mgl32.Vec2
}

// BoolState, FloatState and Vec2State build a State of the given kind.
func BoolState(v bool) State       { return State{Kind: cfg.ActionBool, Bool: v} }
func FloatState(v float32) State   { return State{Kind: cfg.ActionFloat, Float: v} }
func Vec2State(v mgl32.Vec2) State { return State{Kind: cfg.ActionVec2, Vec: v} }

// AsBool returns the boolean value; ok is false on a kind mismatch.
func (s State) AsBool() (bool, bool) {
	if s.Kind != cfg.ActionBool {
		return false, false
	}
	return s.Bool, true
}

// AsFloat returns the scalar value; ok is false on a kind mismatch.
func (s State) AsFloat() (float32, bool) {
	if s.Kind != cfg.ActionFloat {
		return 0, false
	}
	return s.Float, true
}

// AsVec2 returns the 2D value; ok is false on a kind mismatch.
func (s State) AsVec2() (mgl32.Vec2, bool) {
	if s.Kind != cfg.ActionVec2 {
		return mgl32.Vec2{}, false
	}
	return s.Vec, true
}

// Poller is the external action runtime. Poll reports the current value
// of one hardware binding; ok is false when that binding is inactive this
// frame. ViewPose reports the first available headset view orientation.
type Poller interface {
	Poll(profile, path string) (State, bool)
	ViewPose() (mgl32.Quat, bool)
}

type action struct {
	decl     cfg.XRAction
	priority int
	bindings []cfg.XRBinding
	current  State
	active   bool
}

// Registry holds the immutable action tables plus each action's
// per-frame resolved value. Built once at startup; only Refresh mutates
// it afterwards.
type Registry struct {
	byName map[string]*action
	order  []*action
}

// NewRegistry builds the lookup table from declarations. Bindings naming
// an undeclared action or actions naming an undeclared set are
// declaration bugs and fail construction. When two sets declare the same
// action name, the higher-priority set's declaration wins.
func NewRegistry(sets []cfg.XRActionSet, decls []cfg.XRAction, binds []cfg.XRBinding) (*Registry, error) {
	setPriority := make(map[string]int, len(sets))
	for _, s := range sets {
		if _, ok := setPriority[s.Name]; ok {
			return nil, fmt.Errorf("actions: duplicate action set %q", s.Name)
		}
		setPriority[s.Name] = s.Priority
	}

	r := &Registry{byName: make(map[string]*action, len(decls))}
	for _, d := range decls {
		prio, ok := setPriority[d.Set]
		if !ok {
			return nil, fmt.Errorf("actions: action %q references unknown set %q", d.Name, d.Set)
		}
		if prev, ok := r.byName[d.Name]; ok {
			if prev.priority >= prio {
				continue
			}
			prev.decl, prev.priority = d, prio
			continue
		}
		a := &action{decl: d, priority: prio}
		r.byName[d.Name] = a
		r.order = append(r.order, a)
	}

	for _, b := range binds {
		a, ok := r.byName[b.Action]
		if !ok {
			return nil, fmt.Errorf("actions: binding %s%s references unknown action %q", b.Profile, b.Path, b.Action)
		}
		a.bindings = append(a.bindings, b)
	}
	return r, nil
}

// FromConfig builds the registry from the package-level declarations.
func FromConfig() (*Registry, error) {
	return NewRegistry(cfg.XRActionSets, cfg.XRActions, cfg.XRBindings)
}

// Refresh resolves every action's value for this frame. The first bound
// hardware path reporting an active value wins. A value whose kind does
// not match the declaration is treated as inactive rather than an error.
func (r *Registry) Refresh(p Poller) {
	for _, a := range r.order {
		a.active = false
		a.current = State{Kind: a.decl.Kind}
		for _, b := range a.bindings {
			st, ok := p.Poll(b.Profile, b.Path)
			if !ok || st.Kind != a.decl.Kind {
				continue
			}
			a.current = st
			a.active = true
			break
		}
	}
}

// Value returns the frame's resolved state for a logical action name.
// ok is false for unknown actions and for actions no binding activated
// this frame.
func (r *Registry) Value(name string) (State, bool) {
	a, ok := r.byName[name]
	if !ok || !a.active {
		return State{}, false
	}
	return a.current, true
}
