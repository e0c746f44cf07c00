package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings holds the runtime options. Game rules are not configurable; see
// game.go.
type Settings struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"` // Empty discards logs (the local game owns stdout)

	Audio       bool    `toml:"audio"`
	AudioVolume float64 `toml:"audio_volume"`

	KeyHold time.Duration `toml:"key_hold"`

	SSHHost     string `toml:"ssh_host"`
	SSHPort     string `toml:"ssh_port"`
	HostKeyPath string `toml:"ssh_host_key"`

	WebHost        string `toml:"web_host"`
	WebPort        string `toml:"web_port"`
	SSHDisplayHost string `toml:"ssh_display_host"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		LogLevel:       "info",
		Audio:          true,
		AudioVolume:    0.6,
		KeyHold:        KeyHoldDuration,
		SSHHost:        "::",
		SSHPort:        "2222",
		HostKeyPath:    ".ssh/duel_host_key",
		WebHost:        "0.0.0.0",
		WebPort:        "8080",
		SSHDisplayHost: "localhost",
	}
}

// Load builds Settings from the defaults, then the TOML file named by
// DUEL_CONFIG (if any), then the environment. Later sources win.
func Load() (Settings, error) {
	s := Defaults()
	if path := GetEnv("DUEL_CONFIG", ""); path != "" {
		if err := s.LoadFile(path); err != nil {
			return s, err
		}
	}
	s.ApplyEnv()
	return s, nil
}

// LoadFile overlays the keys present in the TOML file at path onto s.
// A missing file is not an error.
func (s *Settings) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, s)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}
	s.AudioVolume = clampVolume(s.AudioVolume)
	return nil
}

// ApplyEnv overrides s with any settings present in the environment.
// Malformed values leave the current setting in place.
func (s *Settings) ApplyEnv() {
	s.LogLevel = GetEnv("DUEL_LOG_LEVEL", s.LogLevel)
	s.LogFile = GetEnv("DUEL_LOG_FILE", s.LogFile)
	s.Audio = GetEnvBool("DUEL_AUDIO", s.Audio)
	s.AudioVolume = clampVolume(GetEnvFloat("DUEL_AUDIO_VOLUME", s.AudioVolume))
	s.KeyHold = GetEnvDuration("DUEL_KEY_HOLD", s.KeyHold)
	s.SSHHost = GetEnv("SSH_HOST", s.SSHHost)
	s.SSHPort = GetEnv("SSH_PORT", s.SSHPort)
	s.HostKeyPath = GetEnv("SSH_HOST_KEY", s.HostKeyPath)
	s.WebHost = GetEnv("WEB_HOST", s.WebHost)
	s.WebPort = GetEnv("WEB_PORT", s.WebPort)
	s.SSHDisplayHost = GetEnv("SSH_DISPLAY_HOST", s.SSHDisplayHost)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
