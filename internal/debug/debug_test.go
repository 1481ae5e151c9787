package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	type tc struct {
		verbose    bool
		toFile     bool
		wantStderr []string
		wantFile   []string
		notStderr  []string
	}

	tests := map[string]tc{
		"quiet without file": {
			wantStderr: []string{"msg=warned"},
			notStderr:  []string{"msg=debugged"},
		},
		"verbose without file": {
			verbose:    true,
			wantStderr: []string{"msg=warned", "msg=debugged"},
		},
		"quiet with file": {
			toFile:     true,
			wantStderr: []string{"msg=warned"},
			notStderr:  []string{"msg=debugged"},
			wantFile:   []string{"msg=warned", "msg=debugged", "file=a.yaml"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "logs", "debug.log")
			if tt.toFile {
				t.Setenv(EnvVar, path)
			} else {
				t.Setenv(EnvVar, "")
			}

			var stderr bytes.Buffer
			logger, closeLog, err := Setup(&stderr, tt.verbose)
			if err != nil {
				t.Fatalf("Setup() error: %v", err)
			}
			logger = logger.With("file", "a.yaml")
			logger.Debug("debugged")
			logger.Warn("warned")
			if err := closeLog(); err != nil {
				t.Fatalf("close error: %v", err)
			}

			out := stderr.String()
			for _, s := range tt.wantStderr {
				if !strings.Contains(out, s) {
					t.Errorf("stderr missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.notStderr {
				if strings.Contains(out, s) {
					t.Errorf("stderr has %q:\n%s", s, out)
				}
			}

			if !tt.toFile {
				if _, err := os.Stat(path); !os.IsNotExist(err) {
					t.Errorf("debug file created without %s", EnvVar)
				}
				return
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading debug file: %v", err)
			}
			for _, s := range tt.wantFile {
				if !strings.Contains(string(data), s) {
					t.Errorf("debug file missing %q:\n%s", s, data)
				}
			}
		})
	}
}

func TestOpen_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	for _, line := range []string{"one\n", "two\n"} {
		f, err := Open(path)
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		if _, err := f.WriteString(line); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("file = %q, want both lines", data)
	}
}
