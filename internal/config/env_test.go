package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DUEL_TEST_STRING", "value")

	if got := GetEnv("DUEL_TEST_STRING", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want %q", got, "value")
	}
	if got := GetEnv("DUEL_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv missing = %q, want fallback", got)
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("DUEL_TEST_INT", "42")
	t.Setenv("DUEL_TEST_BAD_INT", "forty")
	t.Setenv("DUEL_TEST_FLOAT", "0.25")
	t.Setenv("DUEL_TEST_BOOL", "false")
	t.Setenv("DUEL_TEST_DURATION", "150ms")
	t.Setenv("DUEL_TEST_BAD_DURATION", "soon")

	if got := GetEnvInt("DUEL_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	if got := GetEnvInt("DUEL_TEST_BAD_INT", 1); got != 1 {
		t.Errorf("GetEnvInt malformed = %d, want fallback 1", got)
	}
	if got := GetEnvFloat("DUEL_TEST_FLOAT", 1); got != 0.25 {
		t.Errorf("GetEnvFloat = %v, want 0.25", got)
	}
	if got := GetEnvBool("DUEL_TEST_BOOL", true); got {
		t.Error("GetEnvBool = true, want false")
	}
	if got := GetEnvDuration("DUEL_TEST_DURATION", time.Second); got != 150*time.Millisecond {
		t.Errorf("GetEnvDuration = %v, want 150ms", got)
	}
	if got := GetEnvDuration("DUEL_TEST_BAD_DURATION", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration malformed = %v, want fallback", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DUEL_CONFIG", "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Defaults() {
		t.Errorf("Load = %+v, want defaults", s)
	}
	if s.KeyHold != KeyHoldDuration {
		t.Errorf("KeyHold = %v, want %v", s.KeyHold, KeyHoldDuration)
	}
}

func TestLoadClampsVolume(t *testing.T) {
	t.Setenv("DUEL_CONFIG", "")
	t.Setenv("DUEL_AUDIO_VOLUME", "3")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.AudioVolume != 1 {
		t.Errorf("AudioVolume = %v, want 1", s.AudioVolume)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duel.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
audio = false
key_hold = "120ms"
ssh_port = "2022"
web_port = "9000"
`)
	t.Setenv("DUEL_CONFIG", path)
	t.Setenv("WEB_PORT", "9100")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"from file", s.LogLevel, "debug"},
		{"bool from file", s.Audio, false},
		{"duration from file", s.KeyHold, 120 * time.Millisecond},
		{"port from file", s.SSHPort, "2022"},
		{"env beats file", s.WebPort, "9100"},
		{"default kept", s.SSHDisplayHost, "localhost"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `audio_volume = 0.5`, false},
		{"unknown key", `fps = 120`, true},
		{"syntax", `log_level = `, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			err := s.LoadFile(writeConfig(t, tt.body))
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadFile error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	s := Defaults()
	if err := s.LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err != nil {
		t.Errorf("missing file: %v", err)
	}
}

func TestBorder(t *testing.T) {
	b := Border()

	if b.X != 445 || b.W != 10 || b.H != ArenaHeight {
		t.Errorf("Border = %+v, want x=445 w=10 h=%d", b, ArenaHeight)
	}
}
