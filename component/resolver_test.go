package component

import (
	"maps"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	bindings := []Parameter{
		NewParameter("BASE", "0x1000"),
		NewParameter("STRIDE", "4"),
		NewParameter("BASE_HI", "0xFFFF"),
	}

	tests := []struct {
		name string
		expr string
		want string
	}{
		{"no parameters", "0x20 + 0x4", "0x20 + 0x4"},
		{"empty", "", ""},
		{"single", "BASE + 0x4", "0x1000 + 0x4"},
		{"every occurrence", "BASE + BASE", "0x1000 + 0x1000"},
		{"several parameters", "BASE + 2*STRIDE", "0x1000 + 2*4"},
		{"whole expression", "BASE", "0x1000"},
		{"no spaces", "BASE+STRIDE", "0x1000+4"},
		{"parentheses", "(BASE)+(STRIDE*3)", "(0x1000)+(4*3)"},
		{"longer name preferred", "BASE_HI + BASE", "0xFFFF + 0x1000"},
		{"embedded in identifier", "BASEX + MYBASE", "BASEX + MYBASE"},
		{"embedded in literal", "0xBASE", "0xBASE"},
		{"digit suffix", "BASE2", "BASE2"},
		{"unknown token kept", "OFFSET + BASE", "OFFSET + 0x1000"},
		{"case sensitive", "base + Base", "base + Base"},
		{"arbitrary text", "[BASE]{STRIDE}$", "[0x1000]{4}$"},
		{"unicode letter suffix", "BASEé", "BASEé"},
		{"unicode letter prefix", "éBASE", "éBASE"},
		{"unicode digit suffix", "BASE٣", "BASE٣"},
		{"unicode punctuation", "«BASE»·STRIDE", "«0x1000»·4"},
	}

	r := NewResolver(bindings)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := r.Resolve(tt.expr); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestResolver_Resolve_NoDoubleSubstitution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bindings []Parameter
		expr     string
		want     string
	}{
		{
			name: "value names a later parameter",
			bindings: []Parameter{
				NewParameter("A", "B + 1"),
				NewParameter("B", "7"),
			},
			expr: "A + B",
			want: "B + 1 + 7",
		},
		{
			name: "value names an earlier parameter",
			bindings: []Parameter{
				NewParameter("B", "7"),
				NewParameter("A", "B + 1"),
			},
			expr: "A",
			want: "B + 1",
		},
		{
			name: "value names itself",
			bindings: []Parameter{
				NewParameter("N", "N*2"),
			},
			expr: "N + N",
			want: "N*2 + N*2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NewResolver(tt.bindings).Resolve(tt.expr); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestResolver_Resolve_NonIdentifierNames(t *testing.T) {
	t.Parallel()

	r := NewResolver([]Parameter{
		NewParameter("$BASE", "0x10"),
		NewParameter("base-addr", "0x20"),
	})

	tests := []struct {
		expr string
		want string
	}{
		{"$BASE+1", "0x10+1"},
		{"x$BASE", "x0x10"},
		{"base-addr + 4", "0x20 + 4"},
		{"base-address", "base-address"},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.expr); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestResolver_Resolve_UnicodeNames(t *testing.T) {
	t.Parallel()

	r := NewResolver([]Parameter{NewParameter("ÉCART", "8")})

	tests := []struct {
		expr string
		want string
	}{
		{"ÉCART + 1", "8 + 1"},
		{"xÉCART", "xÉCART"},
		{"ÉCARTé", "ÉCARTé"},
		{"(ÉCART)", "(8)"},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.expr); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestResolver_FirstBindingWins(t *testing.T) {
	t.Parallel()

	r := NewResolver([]Parameter{
		NewParameter("BASE", "first"),
		NewParameter("BASE", "second"),
		NewParameter("", "ignored"),
	})

	if got := r.Resolve("BASE"); got != "first" {
		t.Errorf("Resolve(BASE) = %q, want first", got)
	}
}

func TestResolver_ResolveAll(t *testing.T) {
	t.Parallel()

	r := NewResolver([]Parameter{NewParameter("BASE", "0x2000")})

	got := r.ResolveAll([]Member{
		NewRegister("CTRL", "BASE + 0x0"),
		NewInterface("APB", "BASE + 0x8"),
		NewRegister("CTRL", "BASE + 0x40"),
		NewRegister("RAW", "0x10"),
	})

	want := map[string]string{
		"CTRL": "0x2000 + 0x40",
		"APB":  "0x2000 + 0x8",
		"RAW":  "0x10",
	}

	if !maps.Equal(got, want) {
		t.Errorf("ResolveAll() = %v, want %v", got, want)
	}
}

func TestResolver_Empty(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)

	if got := r.Resolve("BASE + 0x4"); got != "BASE + 0x4" {
		t.Errorf("Resolve() = %q, want input unchanged", got)
	}

	if got := r.ResolveAll(nil); len(got) != 0 {
		t.Errorf("ResolveAll(nil) = %v, want empty", got)
	}
}

func BenchmarkResolver_Resolve(b *testing.B) {
	r := NewResolver([]Parameter{
		NewParameter("BASE", "0x40000000"),
		NewParameter("STRIDE", "0x4"),
		NewParameter("CHANNEL", "3"),
		NewParameter("BANK_OFFSET", "0x1000"),
	})

	const expr = "BASE + BANK_OFFSET + CHANNEL*STRIDE + 0x10"

	b.ReportAllocs()

	for b.Loop() {
		_ = r.Resolve(expr)
	}
}
