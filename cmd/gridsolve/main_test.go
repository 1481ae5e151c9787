package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/grindlemire/go-grid/internal/debug"
)

const formYAML = `
width: 100
height: 20
columns:
  - {index: 1, weight: 1}
children:
  - {name: a, column: 0, row: 0, width: 30, height: 10, sticky: nsew}
  - {name: b, column: 1, row: 0, width: 20, height: 10, padx: [2, 3]}
`

const pairTOML = `
[[children]]
name = "a"
column = 0
row = 0
width = 6
height = 3
sticky = "nsew"

[[children]]
name = "b"
column = 1
row = 0
width = 4
height = 3
sticky = "nsew"
`

// writeFiles creates files under a temp dir and returns the dir.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	t.Setenv(debug.EnvVar, "")
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCollectLayoutFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.yaml":     "",
		"b.toml":     "",
		"c.txt":      "",
		"sub/d.yml":  "",
		"sub/e.json": "",
	})

	type tc struct {
		paths []string
		want  []string
	}

	tests := map[string]tc{
		"directory": {
			paths: []string{dir},
			want:  []string{"a.yaml", "b.toml"},
		},
		"recursive": {
			paths: []string{dir + "/..."},
			want:  []string{"a.yaml", "b.toml", "sub/d.yml"},
		},
		"explicit file kept": {
			paths: []string{filepath.Join(dir, "c.txt")},
			want:  []string{"c.txt"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := collectLayoutFiles(tt.paths)
			if err != nil {
				t.Fatalf("collectLayoutFiles() error: %v", err)
			}
			var want []string
			for _, w := range tt.want {
				want = append(want, filepath.Join(dir, filepath.FromSlash(w)))
			}
			if !slices.Equal(got, want) {
				t.Errorf("collectLayoutFiles() = %v, want %v", got, want)
			}
		})
	}

	if _, err := collectLayoutFiles([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("collectLayoutFiles(missing) succeeded")
	}
}

func TestRunSolve_JSON(t *testing.T) {
	dir := writeFiles(t, map[string]string{"form.yaml": formYAML, "pair.toml": pairTOML})
	form := filepath.Join(dir, "form.yaml")
	pair := filepath.Join(dir, "pair.toml")

	var stdout, stderr bytes.Buffer
	if err := runSolve([]string{"-o", "json", pair, form}, &stdout, &stderr); err != nil {
		t.Fatalf("runSolve() error: %v\nstderr: %s", err, stderr.String())
	}

	var got []solution
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout.String())
	}
	if len(got) != 2 || got[0].File != pair || got[1].File != form {
		t.Fatalf("results out of argument order: %+v", got)
	}

	s := got[1]
	if s.Width != 100 || s.Height != 20 || s.Required != (size{Width: 55, Height: 10}) {
		t.Errorf("form size = %dx%d required %+v", s.Width, s.Height, s.Required)
	}
	if !slices.Equal(s.Columns, []int{30, 100}) || !slices.Equal(s.Rows, []int{20}) {
		t.Errorf("form slots = %v / %v", s.Columns, s.Rows)
	}
	wantChildren := []childRect{
		{Name: "a", X: 0, Y: 0, Width: 30, Height: 20},
		{Name: "b", X: 54, Y: 5, Width: 20, Height: 10},
	}
	if !slices.Equal(s.Children, wantChildren) {
		t.Errorf("form children = %+v, want %+v", s.Children, wantChildren)
	}

	// Natural size when the file sets none.
	if p := got[0]; p.Width != 10 || p.Height != 3 {
		t.Errorf("pair size = %dx%d, want 10x3", p.Width, p.Height)
	}
}

func TestRunSolve_Formats(t *testing.T) {
	dir := writeFiles(t, map[string]string{"form.yaml": formYAML})
	form := filepath.Join(dir, "form.yaml")

	type tc struct {
		args []string
		want []string
	}

	tests := map[string]tc{
		"text": {
			args: []string{form},
			want: []string{
				": 100x20 (required 55x10)\n",
				"  columns:  30 100\n",
				"  a         0,0   30x20\n",
				"  b         54,5  20x10\n",
			},
		},
		"yaml": {
			args: []string{"-o", "yaml", form},
			want: []string{"columns: [30, 100]", "- name: b", "x: 54"},
		},
		"size override": {
			args: []string{"-W", "60", "-H", "10", form},
			want: []string{": 60x10 (required 55x10)\n", "  columns:  30 60\n"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := runSolve(tt.args, &stdout, &stderr); err != nil {
				t.Fatalf("runSolve() error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(stdout.String(), w) {
					t.Errorf("output missing %q:\n%s", w, stdout.String())
				}
			}
		})
	}

	var stdout, stderr bytes.Buffer
	if err := runSolve([]string{"-o", "xml", form}, &stdout, &stderr); err == nil {
		t.Error("runSolve(-o xml) succeeded")
	}
}

func TestRunSolve_BadFileStillPrintsOthers(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.yaml": formYAML,
		"bad.yaml":  "children: [{name: a, sticky: up}]\n",
	})

	var stdout, stderr bytes.Buffer
	err := runSolve([]string{"-o", "json", dir}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "1 file(s) had errors") {
		t.Fatalf("runSolve() error = %v", err)
	}
	if !strings.Contains(stderr.String(), "bad.yaml") || !strings.Contains(stderr.String(), "children[0].sticky") {
		t.Errorf("stderr = %q", stderr.String())
	}
	var got []solution
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil || len(got) != 1 {
		t.Errorf("stdout = %s (%v)", stdout.String(), err)
	}
}

func TestRunCheck(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.yaml": formYAML,
		"pair.toml": pairTOML,
		"dup.yml":   "children: [{name: a}, {name: a}]\n",
		"neg.toml":  "width = -4\n",
	})

	var stdout, stderr bytes.Buffer
	err := runCheck([]string{"-v", dir}, &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "2 file(s) had errors") {
		t.Fatalf("runCheck() error = %v", err)
	}
	for _, want := range []string{"dup.yml", "already used", "neg.toml", "'width'"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr.String())
		}
	}
	if !strings.Contains(stdout.String(), "Checking 4 layout file(s)") {
		t.Errorf("stdout = %q", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	if err := runCheck([]string{filepath.Join(dir, "good.yaml")}, &stdout, &stderr); err != nil {
		t.Errorf("runCheck(good) error: %v", err)
	}
}

func TestRunRender(t *testing.T) {
	dir := writeFiles(t, map[string]string{"pair.toml": pairTOML})
	pair := filepath.Join(dir, "pair.toml")

	var stdout, stderr bytes.Buffer
	if err := runRender([]string{"-border", "ascii", pair}, &stdout, &stderr); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}
	want := "+a---++b-+\n" +
		"|    ||  |\n" +
		"+----++--+\n"
	if stdout.String() != want {
		t.Errorf("runRender() =\n%s\nwant\n%s", stdout.String(), want)
	}

	if err := runRender([]string{pair, pair}, &stdout, &stderr); err == nil {
		t.Error("runRender with two files succeeded")
	}
	if err := runRender([]string{"-border", "wavy", pair}, &stdout, &stderr); err == nil {
		t.Error("runRender with unknown border succeeded")
	}
}

func TestExamplesPassCheck(t *testing.T) {
	t.Setenv(debug.EnvVar, "")
	var stdout, stderr bytes.Buffer
	if err := runCheck([]string{"-v", "../../examples/..."}, &stdout, &stderr); err != nil {
		t.Fatalf("runCheck(examples) error: %v\n%s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "All 2 file(s) passed checks") {
		t.Errorf("stdout = %q", stdout.String())
	}
}
