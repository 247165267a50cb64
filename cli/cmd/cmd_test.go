package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

const chipYAML = `
components:
  - name: UART
    parameters:
      - { name: BASE, value: "0x1000" }
      - { name: BASE_ALIGN, value: "4" }
    registers:
      - { name: CTRL, address: "BASE + 0x0" }
      - { name: STATUS, address: "BASE + 0x4" }
      - { name: DATA, address: "BASE + BASE_ALIGN * 2" }
    interfaces:
      - { name: APB, offset: "BASE + 0x8" }
  - name: TIMER
    parameters:
      - { name: BASE, value: "0x3000" }
    registers:
      - { name: LOAD, address: "BASE" }
      - { name: LOAD, address: "BASE + 0x10" }
systems:
  - name: MyChip
    instances:
      - { name: UART0, component: UART }
      - name: UART1
        component: UART
        overrides: { BASE: "0x2000" }
      - { name: TIMER0, component: TIMER }
  - name: Other
    instances:
      - { name: UART0, component: UART, overrides: { BASE: "0x9000" } }
`

// writeManifest writes src to a new file named name and returns its path.
func writeManifest(t *testing.T, name, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// testContext returns a context naming a manifest holding chipYAML, and
// the buffer that receives command output.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithManifest(t.Context(), writeManifest(t, "chip.yaml", chipYAML))

	return WithOutput(ctx, &out), &out
}

func TestOutputFrom_DefaultsToStdout(t *testing.T) {
	t.Parallel()

	if w := outputFrom(context.Background()); w != os.Stdout {
		t.Errorf("outputFrom() = %v, want os.Stdout", w)
	}
}

func TestKongContextFrom_Unset(t *testing.T) {
	t.Parallel()

	if ktx := kongContextFrom(context.Background()); ktx != nil {
		t.Errorf("kongContextFrom() = %v, want nil", ktx)
	}
}
