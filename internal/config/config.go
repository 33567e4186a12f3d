package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	UI       UIConfig       `toml:"ui"`
	Feed     FeedConfig     `toml:"feed"`
	Gallery  GalleryConfig  `toml:"gallery"`
	Playback PlaybackConfig `toml:"playback"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type FeedConfig struct {
	// Path to a local TOML feed; takes precedence over URL.
	Path string `toml:"path"`
	// URL of a remote JSON feed.
	URL string `toml:"url"`
}

type GalleryConfig struct {
	VerticalGap      float64 `toml:"vertical_gap"`
	BaseHeight       float64 `toml:"base_height"`
	RecycleBuffer    float64 `toml:"recycle_buffer"`
	Columns          int     `toml:"columns"`
	ColumnSpread     float64 `toml:"column_spread"`
	DepthJitter      float64 `toml:"depth_jitter"`
	AutoScroll       bool    `toml:"auto_scroll"`
	AutoScrollRate   float64 `toml:"auto_scroll_rate"`
	WheelSensitivity float64 `toml:"wheel_sensitivity"`
	FOV              float64 `toml:"fov"`
	CameraDistance   float64 `toml:"camera_distance"`
	MaxDeviceScale   float64 `toml:"max_device_scale"`
	Grain            float64 `toml:"grain"`
}

type PlaybackConfig struct {
	HWAccel string `toml:"hwdec"`
	Mute    bool   `toml:"mute"`
	Volume  int    `toml:"volume"`
	Loop    bool   `toml:"loop"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1920,
			Height:     1080,
		},
		Gallery: GalleryConfig{
			VerticalGap:      1.05,
			BaseHeight:       0.9,
			RecycleBuffer:    1.8,
			Columns:          1,
			ColumnSpread:     3.0,
			DepthJitter:      0.6,
			AutoScrollRate:   0.35,
			WheelSensitivity: 0.075,
			FOV:              50,
			CameraDistance:   8.5,
			MaxDeviceScale:   2,
			Grain:            0.06,
		},
		Playback: PlaybackConfig{
			HWAccel: "auto-safe",
			Mute:    true,
			Volume:  100,
			Loop:    true,
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "driftwall"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
