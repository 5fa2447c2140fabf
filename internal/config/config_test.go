package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NUMBERRUSH_DB", "")
	t.Setenv("NUMBERRUSH_LOG", "")
	t.Setenv("NUMBERRUSH_SOUND", "")
	t.Setenv("NUMBERRUSH_TIMER", "")

	cfg := Load()
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if cfg.LogPath != "" {
		t.Errorf("LogPath = %q, want empty", cfg.LogPath)
	}
	if !cfg.Sound {
		t.Error("Sound = false, want true")
	}
	if cfg.Timer != 10 {
		t.Errorf("Timer = %d, want 10", cfg.Timer)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NUMBERRUSH_DB", "/tmp/rush.db")
	t.Setenv("NUMBERRUSH_LOG", "/tmp/rush.log")
	t.Setenv("NUMBERRUSH_SOUND", "off")
	t.Setenv("NUMBERRUSH_TIMER", "15")

	cfg := Load()
	if cfg.DBPath != "/tmp/rush.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogPath != "/tmp/rush.log" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.Sound {
		t.Error("Sound = true, want false")
	}
	if cfg.Timer != 15 {
		t.Errorf("Timer = %d, want 15", cfg.Timer)
	}
}

func TestEnvIntOr(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 10},
		{"20", 20},
		{"abc", 10},
		{"-5", 10},
		{"0", 10},
	}
	for _, tt := range tests {
		t.Setenv("NUMBERRUSH_TEST_INT", tt.value)
		if got := envIntOr("NUMBERRUSH_TEST_INT", 10); got != tt.want {
			t.Errorf("envIntOr(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestEnvBoolOr(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"", false, false},
		{"ON", false, true},
		{"yes", false, true},
		{"0", true, false},
		{"off", true, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Setenv("NUMBERRUSH_TEST_BOOL", tt.value)
		if got := envBoolOr("NUMBERRUSH_TEST_BOOL", tt.def); got != tt.want {
			t.Errorf("envBoolOr(%q, %t) = %t, want %t", tt.value, tt.def, got, tt.want)
		}
	}
}
