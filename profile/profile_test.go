package profile

import "testing"

func TestMake_Options(t *testing.T) {
	t.Parallel()

	mode, path, quiet := Make(
		WithMode("cpu"),
		WithPath("/tmp/profiles"),
		WithQuiet(true),
	)()

	if mode != "cpu" || path != "/tmp/profiles" || !quiet {
		t.Errorf("Make() = (%q, %q, %v)", mode, path, quiet)
	}
}

func TestMake_LaterOptionWins(t *testing.T) {
	t.Parallel()

	mode, _, _ := Make(WithMode("cpu"), WithMode("heap"))()
	if mode != "heap" {
		t.Errorf("mode = %q, want heap", mode)
	}
}

func TestConfig_Start_NoMode(t *testing.T) {
	t.Parallel()

	p := Make(WithPath(t.TempDir())).Start()
	if _, ok := p.(ignore); !ok {
		t.Errorf("Start() without mode = %T, want no-op", p)
	}

	p.Stop()
}

func TestConfig_Start_UnknownMode(t *testing.T) {
	t.Parallel()

	p := Make(WithMode("bogus")).Start()
	if _, ok := p.(ignore); !ok {
		t.Errorf("Start() with unknown mode = %T, want no-op", p)
	}

	p.Stop()
}
