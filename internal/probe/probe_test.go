package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/cdx/internal/core"
)

func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, "Documents", "notes"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, "todo.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	return home
}

func TestProbe(t *testing.T) {
	home := setupHome(t)

	inputs := []core.Input{
		core.None(),
		core.Some("~/Documents/notes"),
		core.Some("~/todo.txt"),
		core.Some("~/missing"),
		core.Some(""),
		core.Some("~/todo.txt/sub"),
	}

	tests := []struct {
		path   string
		exists bool
		dir    bool
		ok     bool
	}{
		{path: home, exists: true, dir: true, ok: true},
		{path: filepath.Join(home, "Documents", "notes"), exists: true, dir: true, ok: true},
		{path: filepath.Join(home, "todo.txt"), exists: true, dir: false, ok: false},
		{path: filepath.Join(home, "missing"), exists: false, dir: false, ok: false},
		{path: "", exists: false, dir: false, ok: false},
		{path: filepath.Join(home, "todo.txt", "sub"), exists: false, dir: false, ok: false},
	}

	results := Probe(home, inputs, 2)
	if len(results) != len(tests) {
		t.Fatalf("Probe() returned %d results, want %d", len(results), len(tests))
	}

	for i, tt := range tests {
		got := results[i]
		if got.Path != tt.path {
			t.Errorf("results[%d].Path = %q, want %q", i, got.Path, tt.path)
		}
		if got.Exists != tt.exists {
			t.Errorf("results[%d].Exists = %v, want %v", i, got.Exists, tt.exists)
		}
		if got.Dir != tt.dir {
			t.Errorf("results[%d].Dir = %v, want %v", i, got.Dir, tt.dir)
		}
		if got.Ok() != tt.ok {
			t.Errorf("results[%d].Ok() = %v, want %v", i, got.Ok(), tt.ok)
		}
	}

	for _, i := range []int{2, 5} {
		if reason := core.Describe(results[i].Err); reason != "not a directory" {
			t.Errorf("Describe(results[%d].Err) = %q, want %q", i, reason, "not a directory")
		}
	}
}

func TestProbe_DoesNotChangeDir(t *testing.T) {
	home := setupHome(t)

	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	_ = Probe(home, []core.Input{core.Some("~/Documents")}, 0)

	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("working directory changed from %q to %q", before, after)
	}
}

func TestFilter(t *testing.T) {
	home := setupHome(t)

	results := Probe(home, []core.Input{
		core.Some("~"),
		core.Some("~/todo.txt"),
		core.Some("~/missing"),
		core.Some("~/todo.txt/sub"),
	}, 0)

	tests := []struct {
		name string
		expr string
		want int
	}{
		{name: "empty matches all", expr: "", want: 4},
		{name: "ok only", expr: "ok", want: 1},
		{name: "failures", expr: "not ok", want: 3},
		{name: "by kind", expr: `kind == "tilde"`, want: 1},
		{name: "by reason", expr: `error == "not found"`, want: 1},
		{name: "existing files", expr: "exists && !dir", want: 1},
		{name: "missing", expr: "!exists", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := CompileFilter(tt.expr)
			if err != nil {
				t.Fatalf("CompileFilter() error = %v", err)
			}

			got, err := Filter(program, results)
			if err != nil {
				t.Fatalf("Filter() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Filter() returned %d results, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCompileFilter_Invalid(t *testing.T) {
	tests := []string{
		"invalid syntax @@",
		`unknown_var`,
		`path`,
	}

	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			if _, err := CompileFilter(code); err == nil {
				t.Errorf("CompileFilter(%q) expected error", code)
			}
		})
	}
}
