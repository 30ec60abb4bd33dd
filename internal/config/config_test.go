package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Log.Level != "info" || c.Log.Format != "text" {
		t.Errorf("log defaults = %s/%s, want info/text", c.Log.Level, c.Log.Format)
	}
	if c.Review.Limit != 20 {
		t.Errorf("Review.Limit = %d, want 20", c.Review.Limit)
	}
	if c.BKT.PGuess != 0.2 || c.BKT.PSlip != 0.1 {
		t.Errorf("BKT defaults = %g/%g, want 0.2/0.1", c.BKT.PGuess, c.BKT.PSlip)
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Errorf("config = %+v, want defaults", c)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := strings.Join([]string{
		"db:",
		"  path: /tmp/x.db",
		"log:",
		"  level: debug",
		"review:",
		"  limit: 5",
		"bkt:",
		"  p_guess: 0.25",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DB.Path != "/tmp/x.db" {
		t.Errorf("DB.Path = %q", c.DB.Path)
	}
	if c.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", c.Log.Level)
	}
	if c.Review.Limit != 5 {
		t.Errorf("Review.Limit = %d, want 5", c.Review.Limit)
	}
	if c.BKT.PGuess != 0.25 {
		t.Errorf("BKT.PGuess = %g, want 0.25", c.BKT.PGuess)
	}
	// Untouched keys keep their defaults.
	if c.BKT.PSlip != 0.1 {
		t.Errorf("BKT.PSlip = %g, want default 0.1", c.BKT.PSlip)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPEAKSHARP_LOG_LEVEL", "error")
	t.Setenv("SPEAKSHARP_REVIEW_LIMIT", "7")
	t.Setenv("SPEAKSHARP_BKT_P_SLIP", "0.05")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error (env wins)", c.Log.Level)
	}
	if c.Review.Limit != 7 {
		t.Errorf("Review.Limit = %d, want 7", c.Review.Limit)
	}
	if c.BKT.PSlip != 0.05 {
		t.Errorf("BKT.PSlip = %g, want 0.05", c.BKT.PSlip)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad log level", map[string]string{"SPEAKSHARP_LOG_LEVEL": "loud"}},
		{"bad log format", map[string]string{"SPEAKSHARP_LOG_FORMAT": "xml"}},
		{"zero review limit", map[string]string{"SPEAKSHARP_REVIEW_LIMIT": "0"}},
		{"p_guess out of range", map[string]string{"SPEAKSHARP_BKT_P_GUESS": "1.5"}},
		{"p_slip zero", map[string]string{"SPEAKSHARP_BKT_P_SLIP": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
