package component

import "slices"

// System is a named design made of component instances.
//
// Instances are kept in the order they were added. Instance names are not
// required to be unique.
type System struct {
	name      string
	instances []*Instance
}

// NewSystem returns an empty System.
func NewSystem(name string) *System {
	return &System{name: name}
}

// Name returns the system name.
func (s *System) Name() string { return s.name }

// Add appends inst to the system.
func (s *System) Add(inst *Instance) {
	s.instances = append(s.instances, inst)
}

// Instances returns the system's instances in order.
func (s *System) Instances() []*Instance {
	return slices.Clone(s.instances)
}

// Instance returns the first instance named name.
func (s *System) Instance(name string) (*Instance, bool) {
	i := slices.IndexFunc(s.instances, func(inst *Instance) bool {
		return inst.name == name
	})
	if i < 0 {
		return nil, false
	}

	return s.instances[i], true
}
