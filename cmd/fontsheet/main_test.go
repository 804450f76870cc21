package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/fontsheet-go/pkg/fontsheet"
)

const testFont = `STARTFONT 2.1
STARTCHAR 65
BBX 4 2 0 0
BITMAP
F0
90
ENDCHAR
STARTCHAR 66
BBX 4 2 0 0
BITMAP
60
60
ENDCHAR
STARTCHAR 67
BBX 4 2 0 0
BITMAP
F0
F0
ENDCHAR
ENDFONT
`

// setupWorkdir moves into an empty directory with a font file and no option
// variables, and returns the font path.
func setupWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	for _, key := range []string{fontsheet.EnvJISToSJIS, fontsheet.EnvOffset} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	input := filepath.Join(dir, "font.bdf")
	if err := os.WriteFile(input, []byte(testFont), 0o644); err != nil {
		t.Fatalf("Failed to write font: %v", err)
	}
	return input
}

func execute(args ...string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestRootCmd(t *testing.T) {
	input := setupWorkdir(t)
	out := filepath.Join(t.TempDir(), "sheet.png")

	if err := execute(input, out); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
}

func TestRootCmdArgs(t *testing.T) {
	input := setupWorkdir(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"one arg", []string{input}},
		{"three args", []string{input, "a.png", "b.png"}},
		{"preview one arg", []string{"preview", "--text", "A", input}},
	}

	for _, tt := range tests {
		if err := execute(tt.args...); err == nil {
			t.Errorf("%s: expected usage error", tt.name)
		}
	}
}

func TestPreviewCmd(t *testing.T) {
	input := setupWorkdir(t)
	out := filepath.Join(t.TempDir(), "preview.png")

	if err := execute("preview", input, out, "--text", "BCA", "--scale", "2"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
}

func TestPreviewCmdRequiresText(t *testing.T) {
	input := setupWorkdir(t)
	out := filepath.Join(t.TempDir(), "preview.png")

	err := execute("preview", input, out)
	if err == nil || !strings.Contains(err.Error(), "preview text must not be empty") {
		t.Fatalf("Expected empty text error, got %v", err)
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("Output should not be written")
	}
}

func TestPreviewCmdBadScale(t *testing.T) {
	input := setupWorkdir(t)
	out := filepath.Join(t.TempDir(), "preview.png")

	if err := execute("preview", input, out, "--text", "A", "--scale", "0"); err == nil {
		t.Fatal("Expected scale error")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir back failed: %v", err)
		}
	})
}
