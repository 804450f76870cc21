package fontsheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets the option variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvJISToSJIS, EnvOffset} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	tests := []struct {
		jis      string
		offset   string
		expected Options
		wantErr  bool
	}{
		{"", "", Options{}, false},
		{"true", "", Options{JISToSJIS: true}, false},
		{"0", "32", Options{Offset: 32}, false},
		{"yes", "", Options{}, true},
		{"", "x", Options{}, true},
	}

	for _, tt := range tests {
		clearEnv(t)
		if tt.jis != "" {
			t.Setenv(EnvJISToSJIS, tt.jis)
		}
		if tt.offset != "" {
			t.Setenv(EnvOffset, tt.offset)
		}

		opts, err := OptionsFromEnv()
		if (err != nil) != tt.wantErr {
			t.Errorf("OptionsFromEnv(%q, %q) error = %v, wantErr %v", tt.jis, tt.offset, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Expected ErrInvalidOption, got %v", err)
			}
			continue
		}
		if opts != tt.expected {
			t.Errorf("OptionsFromEnv(%q, %q) = %+v, expected %+v", tt.jis, tt.offset, opts, tt.expected)
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "fontsheet.env")
	content := "FONTSHEET_JIS_TO_SJIS=true\nFONTSHEET_OFFSET=16\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	loaded, err := LoadEnvFile(path)
	if err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if loaded != path {
		t.Errorf("LoadEnvFile = %q, expected %q", loaded, path)
	}

	opts, err := OptionsFromEnv()
	if err != nil {
		t.Fatalf("OptionsFromEnv failed: %v", err)
	}
	if !opts.JISToSJIS || opts.Offset != 16 {
		t.Errorf("Unexpected options: %+v", opts)
	}
}

func TestLoadEnvFileDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	// nothing to load
	loaded, err := LoadEnvFile("")
	if err != nil || loaded != "" {
		t.Fatalf("LoadEnvFile(\"\") = %q, %v; expected nothing loaded", loaded, err)
	}

	if err := os.WriteFile(".env", []byte("FONTSHEET_OFFSET=1\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	if err := os.WriteFile(".env.local", []byte("FONTSHEET_OFFSET=2\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env.local: %v", err)
	}

	loaded, err = LoadEnvFile("")
	if err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if loaded != ".env.local" {
		t.Errorf("LoadEnvFile loaded %q, expected .env.local", loaded)
	}
	if v := os.Getenv(EnvOffset); v != "2" {
		t.Errorf("%s = %q, expected 2", EnvOffset, v)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if _, err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected error for missing env file")
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions should be valid: %v", err)
	}
	if err := (Options{Offset: -1}).Validate(); err == nil {
		t.Error("Expected error for negative offset")
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
