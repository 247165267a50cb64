package component

import (
	"errors"
	"testing"
)

// newUART builds the reference UART definition used across tests.
func newUART(t *testing.T) *Component {
	t.Helper()

	c, err := NewComponent("UART", NewParameter("BASE", "0x1000"))
	if err != nil {
		t.Fatalf("NewComponent() error = %v", err)
	}

	for _, add := range []struct {
		kind Kind
		m    Member
	}{
		{KindRegister, NewRegister("CTRL", "BASE + 0x0")},
		{KindRegister, NewRegister("DATA", "BASE + 0x4")},
		{KindInterface, NewInterface("APB", "BASE + 0x8")},
	} {
		if err := c.AddMember(add.kind, add.m); err != nil {
			t.Fatalf("AddMember(%v, %s) error = %v", add.kind, add.m.Name(), err)
		}
	}

	return c
}

func TestComponent_Parameter_ReturnsDeclaredValue(t *testing.T) {
	t.Parallel()

	c, err := NewComponent("SPI",
		NewParameter("BASE", "0x4000"),
		NewParameter("WIDTH", "32"),
		NewParameter("STRIDE", "4"),
	)
	if err != nil {
		t.Fatalf("NewComponent() error = %v", err)
	}

	check := func() {
		t.Helper()

		for _, want := range c.Parameters() {
			got, ok := c.Parameter(want.Name())
			if !ok {
				t.Fatalf("Parameter(%q) not found", want.Name())
			}

			if got != want {
				t.Errorf("Parameter(%q) = %v, want %v", want.Name(), got, want)
			}
		}
	}

	check()

	// Resolution and overrides never touch the definition.
	inst := NewInstance("SPI0", c)
	if err := inst.Override("BASE", "0x5000"); err != nil {
		t.Fatalf("Override() error = %v", err)
	}

	_ = inst.Resolve(KindRegister)

	check()

	if p, _ := c.Parameter("BASE"); p.Value() != "0x4000" {
		t.Errorf("definition default changed to %q", p.Value())
	}
}

func TestComponent_Parameter_Missing(t *testing.T) {
	t.Parallel()

	c := newUART(t)

	if p, ok := c.Parameter("IRQ"); ok {
		t.Errorf("Parameter(IRQ) = %v, want not found", p)
	}
}

func TestNewComponent_DuplicateParameter(t *testing.T) {
	t.Parallel()

	_, err := NewComponent("GPIO",
		NewParameter("BASE", "0x0"),
		NewParameter("BASE", "0x1"),
	)
	if !errors.Is(err, ErrDuplicateParameter) {
		t.Fatalf("NewComponent() error = %v, want %v", err, ErrDuplicateParameter)
	}
}

func TestComponent_Members_UnknownKindIsEmpty(t *testing.T) {
	t.Parallel()

	c, err := NewComponent("TIMER", NewParameter("BASE", "0x0"))
	if err != nil {
		t.Fatalf("NewComponent() error = %v", err)
	}

	for k := range Kinds() {
		if got := c.Members(k); len(got) != 0 {
			t.Errorf("Members(%v) = %v, want empty", k, got)
		}
	}

	if got := c.Members(Kind(42)); len(got) != 0 {
		t.Errorf("Members(Kind(42)) = %v, want empty", got)
	}

	if got := c.Kinds(); len(got) != 0 {
		t.Errorf("Kinds() = %v, want none", got)
	}
}

func TestComponent_Members_PreserveOrder(t *testing.T) {
	t.Parallel()

	c := newUART(t)

	regs := c.Members(KindRegister)
	if len(regs) != 2 {
		t.Fatalf("Members(register) len = %d, want 2", len(regs))
	}

	if regs[0].Name() != "CTRL" || regs[1].Name() != "DATA" {
		t.Errorf("Members(register) order = [%s %s], want [CTRL DATA]",
			regs[0].Name(), regs[1].Name())
	}

	// The returned slice is a copy.
	regs[0] = NewRegister("BOGUS", "")
	if c.Members(KindRegister)[0].Name() != "CTRL" {
		t.Error("Members() exposed internal storage")
	}

	kinds := c.Kinds()
	if len(kinds) != 2 || kinds[0] != KindRegister || kinds[1] != KindInterface {
		t.Errorf("Kinds() = %v, want [register interface]", kinds)
	}
}

func TestComponent_AddMember_InvalidKind(t *testing.T) {
	t.Parallel()

	c := newUART(t)

	err := c.AddMember(Kind(-1), NewRegister("X", "BASE"))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("AddMember() error = %v, want %v", err, ErrUnknownKind)
	}
}

func TestComponent_SealedAfterInstance(t *testing.T) {
	t.Parallel()

	c := newUART(t)
	if c.Sealed() {
		t.Fatal("component sealed before any instance")
	}

	_ = NewInstance("UART0", c)

	if !c.Sealed() {
		t.Fatal("component not sealed after NewInstance")
	}

	if err := c.AddParameter(NewParameter("IRQ", "5")); !errors.Is(err, ErrSealed) {
		t.Errorf("AddParameter() error = %v, want %v", err, ErrSealed)
	}

	if err := c.AddMember(KindRegister, NewRegister("STAT", "BASE + 0xC")); !errors.Is(err, ErrSealed) {
		t.Errorf("AddMember() error = %v, want %v", err, ErrSealed)
	}

	if got := len(c.Members(KindRegister)); got != 2 {
		t.Errorf("register count = %d after rejected AddMember, want 2", got)
	}

	if _, ok := c.Parameter("IRQ"); ok {
		t.Error("rejected parameter was recorded")
	}
}

func TestSystem_AddAndLookup(t *testing.T) {
	t.Parallel()

	uart := newUART(t)
	sys := NewSystem("MyChip")

	first := NewInstance("UART0", uart)
	dup := NewInstance("UART0", uart)
	other := NewInstance("UART1", uart)

	sys.Add(first)
	sys.Add(other)
	sys.Add(dup)

	if sys.Name() != "MyChip" {
		t.Errorf("Name() = %q, want MyChip", sys.Name())
	}

	got := sys.Instances()
	if len(got) != 3 {
		t.Fatalf("Instances() len = %d, want 3", len(got))
	}

	if got[0] != first || got[1] != other || got[2] != dup {
		t.Error("Instances() not in insertion order")
	}

	inst, ok := sys.Instance("UART0")
	if !ok || inst != first {
		t.Error("Instance(UART0) did not return the first match")
	}

	if _, ok := sys.Instance("UART9"); ok {
		t.Error("Instance(UART9) found, want not found")
	}
}
