package manifest

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/ardnew/hwsys/component"
)

// document is the decoded form shared by every manifest format.
// Field tags describe both the YAML keys and the HCL block layout.
type document struct {
	Components []componentDoc `hcl:"component,block" yaml:"components"`
	Systems    []systemDoc    `hcl:"system,block"    yaml:"systems"`
}

type componentDoc struct {
	Name       string         `hcl:"name,label"      yaml:"name"`
	Parameters []parameterDoc `hcl:"parameter,block" yaml:"parameters"`
	Registers  []registerDoc  `hcl:"register,block"  yaml:"registers"`
	Interfaces []interfaceDoc `hcl:"interface,block" yaml:"interfaces"`
}

type parameterDoc struct {
	Name  string `hcl:"name,label"  yaml:"name"`
	Value scalar `hcl:"value,attr"  yaml:"value"`
}

type registerDoc struct {
	Name    string `hcl:"name,label"   yaml:"name"`
	Address scalar `hcl:"address,attr" yaml:"address"`
}

type interfaceDoc struct {
	Name   string `hcl:"name,label"  yaml:"name"`
	Offset scalar `hcl:"offset,attr" yaml:"offset"`
}

type systemDoc struct {
	Name      string        `hcl:"name,label"     yaml:"name"`
	Instances []instanceDoc `hcl:"instance,block" yaml:"instances"`
}

type instanceDoc struct {
	Overrides map[string]scalar `hcl:"overrides,optional" yaml:"overrides"`
	Name      string            `hcl:"name,label"         yaml:"name"`
	Component string            `hcl:"component,attr"     yaml:"component"`
}

// memberDoc is a member of any kind in declaration order.
type memberDoc struct {
	name, expr string
	kind       component.Kind
}

func (c componentDoc) members() []memberDoc {
	m := make([]memberDoc, 0, len(c.Registers)+len(c.Interfaces))

	for _, r := range c.Registers {
		m = append(m, memberDoc{kind: component.KindRegister, name: r.Name, expr: string(r.Address)})
	}

	for _, i := range c.Interfaces {
		m = append(m, memberDoc{kind: component.KindInterface, name: i.Name, expr: string(i.Offset)})
	}

	return m
}

// build constructs the design described by doc. Every error is decorated
// with the source name and the manifest element that caused it.
func (doc *document) build(source string, opts ...component.Option) (*Design, error) {
	fail := func(err error, attrs ...slog.Attr) error {
		return component.WrapError(err).
			With(append([]slog.Attr{slog.String("source", source)}, attrs...)...)
	}

	d := &Design{Source: source}

	for _, cd := range doc.Components {
		if cd.Name == "" {
			return nil, fail(ErrMissingName, slog.String("element", "component"))
		}

		if _, ok := d.Component(cd.Name); ok {
			return nil, fail(ErrDuplicateName, slog.String("component", cd.Name))
		}

		c, err := cd.build()
		if err != nil {
			return nil, fail(err, slog.String("component", cd.Name))
		}

		d.Components = append(d.Components, c)
	}

	for _, sd := range doc.Systems {
		if sd.Name == "" {
			return nil, fail(ErrMissingName, slog.String("element", "system"))
		}

		if _, ok := d.System(sd.Name); ok {
			return nil, fail(ErrDuplicateName, slog.String("system", sd.Name))
		}

		sys := component.NewSystem(sd.Name)

		for _, id := range sd.Instances {
			inst, err := id.build(d, sys, opts...)
			if err != nil {
				return nil, fail(err, slog.String("system", sd.Name))
			}

			sys.Add(inst)
		}

		d.Systems = append(d.Systems, sys)
	}

	return d, nil
}

func (cd componentDoc) build() (*component.Component, error) {
	params := make([]component.Parameter, 0, len(cd.Parameters))
	for _, p := range cd.Parameters {
		if p.Name == "" {
			return nil, ErrMissingName.With(slog.String("element", "parameter"))
		}

		params = append(params, component.NewParameter(p.Name, string(p.Value)))
	}

	c, err := component.NewComponent(cd.Name, params...)
	if err != nil {
		return nil, err
	}

	for _, m := range cd.members() {
		if m.name == "" {
			return nil, ErrMissingName.With(slog.String("element", m.kind.String()))
		}

		mem, err := component.NewMember(m.kind, m.name, m.expr)
		if err != nil {
			return nil, err
		}

		if err := c.AddMember(m.kind, mem); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (id instanceDoc) build(
	d *Design,
	sys *component.System,
	opts ...component.Option,
) (*component.Instance, error) {
	if id.Name == "" {
		return nil, ErrMissingName.With(slog.String("element", "instance"))
	}

	if _, ok := sys.Instance(id.Name); ok {
		return nil, ErrDuplicateName.With(slog.String("instance", id.Name))
	}

	def, ok := d.Component(id.Component)
	if !ok {
		return nil, ErrUnknownComponent.With(
			slog.String("instance", id.Name),
			slog.String("component", id.Component),
		)
	}

	inst := component.NewInstance(id.Name, def, opts...)

	// Sorted so the first reported error does not depend on map order.
	for _, name := range slices.Sorted(maps.Keys(id.Overrides)) {
		if err := inst.Override(name, string(id.Overrides[name])); err != nil {
			return nil, err
		}
	}

	return inst, nil
}
