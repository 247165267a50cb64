package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// initContext parses args against a small flag set that includes the init
// command and returns a context carrying the result.
func initContext(t *testing.T, confPath string, args ...string) context.Context {
	t.Helper()

	var cli struct {
		File     string   `name:"file"`
		LogLevel string   `default:"info"  name:"log-level"`
		Pretty   bool     `default:"true"  name:"log-pretty"  negatable:""`
		Tags     []string `name:"tags"`
		Secret   string   `hidden:""       name:"secret"`
		Mode     string   `name:"pprof-mode"`

		Init Init `cmd:""`
	}

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(append(args, "init"))
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx)
}

func TestInit_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		force    bool
		existing bool
		wantErr  error
	}{
		{name: "create new config"},
		{name: "overwrite existing with force", force: true, existing: true},
		{name: "fail without force", existing: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.existing {
				if err := os.WriteFile(confPath, []byte("existing: true\n"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			ctx := initContext(t, confPath, "--file=chip.hcl", "--log-level=debug", "--no-log-pretty")

			err := (&Init{Force: tt.force}).Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteConfig) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			data, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var got map[string]any
			if err := yaml.Unmarshal(data, &got); err != nil {
				t.Fatalf("config is not valid YAML: %v\n%s", err, data)
			}

			want := map[string]any{
				"file":       "chip.hcl",
				"log-level":  "debug",
				"log-pretty": false,
			}

			for k, v := range want {
				if got[k] != v {
					t.Errorf("config[%q] = %v, want %v", k, got[k], v)
				}
			}

			for _, k := range []string{"help", "secret", "pprof-mode", "tags", "existing"} {
				if _, ok := got[k]; ok {
					t.Errorf("config unexpectedly contains %q", k)
				}
			}
		})
	}
}

func TestInit_ValuesKeepFlagOrder(t *testing.T) {
	t.Parallel()

	ctx := initContext(t, filepath.Join(t.TempDir(), "config.yaml"), "--tags=a,b", "--file=x.yaml")

	var keys []string
	for _, item := range (&Init{}).values(ctx) {
		keys = append(keys, item.Key.(string))
	}

	want := []string{"file", "log-level", "log-pretty", "tags"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}

	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys = %v, want %v", keys, want)

			break
		}
	}
}
