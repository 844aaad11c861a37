package toolkit

import (
	"fmt"
	"math"
)

// ModifierKind identifies a modifier-style stateful effect
type ModifierKind int

const (
	ModPlanarDecimate ModifierKind = iota
	ModMirror
	ModBevel
)

func (k ModifierKind) String() string {
	switch k {
	case ModPlanarDecimate:
		return "DECIMATE"
	case ModMirror:
		return "MIRROR"
	default:
		return "BEVEL"
	}
}

// Modifier is a named, configured effect attached to an object. It does
// nothing until applied.
type Modifier struct {
	Kind       ModifierKind
	Name       string
	AngleLimit float64 // degrees, planar decimate
	Width      float64 // bevel
}

// decimateModifierName is the well-known name of the planar decimate
// modifier the toolkit manages.
const decimateModifierName = "DecimatePlanar"

// clampAngle keeps a decimate angle within the allowed 0-30 degree range
func clampAngle(deg float64) float64 {
	return math.Min(30, math.Max(0, deg))
}

// findModifier returns the object's modifier with the given name, or nil
func (o *Object) findModifier(name string) *Modifier {
	for _, mod := range o.Modifiers {
		if mod.Name == name {
			return mod
		}
	}
	return nil
}

// applyModifier runs a modifier's effect on the object's mesh
func (o *Object) applyModifier(mod *Modifier) error {
	switch mod.Kind {
	case ModPlanarDecimate:
		o.Mesh.DissolvePlanar(mod.AngleLimit * math.Pi / 180)
		return nil
	case ModMirror:
		o.Mesh.MirrorX()
		return nil
	default:
		return fmt.Errorf("modifier %s has no mesh operator", mod.Name)
	}
}

// removeModifier detaches a modifier from the object
func (o *Object) removeModifier(mod *Modifier) {
	for i, m := range o.Modifiers {
		if m == mod {
			o.Modifiers = append(o.Modifiers[:i], o.Modifiers[i+1:]...)
			return
		}
	}
}

// AddPlanarDecimate attaches a planar decimate modifier with the given
// angle limit (degrees, clamped 0-30) to every selected object,
// replacing any previous one, and records the angle on the session.
func (s *Session) AddPlanarDecimate(angleDeg float64) Result {
	objs := s.selectedObjects()
	if len(objs) == 0 {
		return cancelled("no mesh objects selected")
	}
	s.Mode = ModeObject
	angle := clampAngle(angleDeg)

	for _, obj := range objs {
		if old := obj.findModifier(decimateModifierName); old != nil {
			obj.removeModifier(old)
		}
		obj.Modifiers = append(obj.Modifiers, &Modifier{
			Kind:       ModPlanarDecimate,
			Name:       decimateModifierName,
			AngleLimit: angle,
		})
	}
	s.DecimateAngle = angle

	res := finished()
	res.infof("Decimate added to selected objects")
	return res
}

// SetDecimateAngle updates the session's decimate angle and pushes it to
// every attached planar decimate modifier, like dragging the slider.
func (s *Session) SetDecimateAngle(angleDeg float64) {
	angle := clampAngle(angleDeg)
	s.DecimateAngle = angle
	for _, obj := range s.Objects {
		if !obj.Selected || obj.Mesh == nil {
			continue
		}
		if mod := obj.findModifier(decimateModifierName); mod != nil {
			mod.AngleLimit = angle
		}
	}
}

// ApplyPlanarDecimate applies the managed planar decimate modifier on
// every selected object that has one. Failures are reported per object.
func (s *Session) ApplyPlanarDecimate() Result {
	objs := s.selectedObjects()
	if len(objs) == 0 {
		return cancelled("no mesh objects selected")
	}
	s.Mode = ModeObject
	res := finished()

	for _, obj := range objs {
		mod := obj.findModifier(decimateModifierName)
		if mod == nil {
			continue
		}
		s.Active = obj
		if err := obj.applyModifier(mod); err != nil {
			res.warnf("Could not apply decimate on %s", obj.Name)
			continue
		}
		obj.removeModifier(mod)
	}
	return res
}

// ApplyAllModifiers applies every modifier, in order, on each selected
// object. A modifier that cannot be applied is reported as a warning and
// skipped; the loop never aborts.
func (s *Session) ApplyAllModifiers() Result {
	objs := s.selectedObjects()
	if len(objs) == 0 {
		return cancelled("no mesh objects selected")
	}
	s.Mode = ModeObject
	res := finished()

	for _, obj := range objs {
		s.Active = obj
		mods := make([]*Modifier, len(obj.Modifiers))
		copy(mods, obj.Modifiers)
		for _, mod := range mods {
			if err := obj.applyModifier(mod); err != nil {
				res.warnf("Could not apply %s on %s: %v", mod.Name, obj.Name, err)
				continue
			}
			obj.removeModifier(mod)
		}
	}
	return res
}

// DeleteAllModifiers removes all modifiers from each selected object
// without applying them.
func (s *Session) DeleteAllModifiers() Result {
	objs := s.selectedObjects()
	if len(objs) == 0 {
		return cancelled("no mesh objects selected")
	}
	for _, obj := range objs {
		obj.Modifiers = nil
	}
	return finished()
}
