package cmd

import (
	"strings"
	"testing"
)

func TestList_All(t *testing.T) {
	t.Parallel()

	ctx, out := testContext(t)

	if err := (&List{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"components",
		"UART",
		"parameter BASE = 0x1000",
		"register CTRL = BASE + 0x0",
		"interface APB = BASE + 0x8",
		"systems",
		"MyChip",
		"UART1 (UART)",
		"BASE = 0x2000",
		"Other",
		"BASE = 0x9000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if strings.Index(got, "components") > strings.Index(got, "systems") {
		t.Errorf("components not listed before systems:\n%s", got)
	}
}

func TestList_Filtered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cmd      List
		want     string
		unwanted string
	}{
		{"components only", List{Components: true}, "parameter BASE", "MyChip"},
		{"systems only", List{Systems: true}, "MyChip", "parameter BASE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, out := testContext(t)

			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got := out.String(); !strings.Contains(got, tt.want) || strings.Contains(got, tt.unwanted) {
				t.Errorf("output should contain %q and not %q:\n%s", tt.want, tt.unwanted, got)
			}
		})
	}
}
