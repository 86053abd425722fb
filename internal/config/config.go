// Package config loads milkyway settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/logging"
	"github.com/ulysse71/milky-way/internal/projection"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	// EnvPrefix prefixes environment overrides, e.g. MILKYWAY_CUTOFF.
	EnvPrefix = "MILKYWAY"

	configName = "milkyway"
	configDir  = ".milkyway"
)

// Config represents the milkyway configuration.
type Config struct {
	Catalog  string         `yaml:"catalog" mapstructure:"catalog"`
	Cutoff   float64        `yaml:"cutoff" mapstructure:"cutoff"`
	Scale    float64        `yaml:"scale" mapstructure:"scale"`
	Workers  int            `yaml:"workers" mapstructure:"workers"`
	LogLevel string         `yaml:"log_level" mapstructure:"log_level"`
	Frame    FrameConfig    `yaml:"frame" mapstructure:"frame"`
	Viewer   ViewerConfig   `yaml:"viewer" mapstructure:"viewer"`
	Snapshot SnapshotConfig `yaml:"snapshot" mapstructure:"snapshot"`
}

// FrameConfig holds the reference points of the galactic frame.
type FrameConfig struct {
	Observer astro.ReferencePoint `yaml:"observer" mapstructure:"observer"`
	Center   astro.ReferencePoint `yaml:"center" mapstructure:"center"`
	Pole     astro.ReferencePoint `yaml:"pole" mapstructure:"pole"`
}

// ViewerConfig contains interactive viewer settings.
type ViewerConfig struct {
	Refresh      time.Duration `yaml:"refresh" mapstructure:"refresh"`
	FovY         float64       `yaml:"fov_y" mapstructure:"fov_y"`
	CutoffFactor float64       `yaml:"cutoff_factor" mapstructure:"cutoff_factor"`
	CacheSize    int           `yaml:"cache_size" mapstructure:"cache_size"`
}

// SnapshotConfig contains image snapshot defaults.
type SnapshotConfig struct {
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog:  "data/hygfull.csv",
		Cutoff:   projection.DefaultCutoff,
		Scale:    1.0 / 1000,
		Workers:  0,
		LogLevel: "info",
		Frame: FrameConfig{
			Observer: astro.Sun,
			Center:   astro.GalacticCenter,
			Pole:     astro.GalacticNorthPole,
		},
		Viewer: ViewerConfig{
			Refresh:      10 * time.Millisecond,
			FovY:         45,
			CutoffFactor: 1.25,
			CacheSize:    16,
		},
		Snapshot: SnapshotConfig{
			Width:  1200,
			Height: 900,
		},
	}
}

// DefaultPath returns the per-user config file path.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configName + ".yaml"
	}
	return filepath.Join(home, configDir, configName+".yaml")
}

// SetDefaults registers every default with v so that environment variables
// can override keys absent from the config file.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("cutoff", d.Cutoff)
	v.SetDefault("scale", d.Scale)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log_level", d.LogLevel)
	setRefDefaults(v, "frame.observer", d.Frame.Observer)
	setRefDefaults(v, "frame.center", d.Frame.Center)
	setRefDefaults(v, "frame.pole", d.Frame.Pole)
	v.SetDefault("viewer.refresh", d.Viewer.Refresh)
	v.SetDefault("viewer.fov_y", d.Viewer.FovY)
	v.SetDefault("viewer.cutoff_factor", d.Viewer.CutoffFactor)
	v.SetDefault("viewer.cache_size", d.Viewer.CacheSize)
	v.SetDefault("snapshot.width", d.Snapshot.Width)
	v.SetDefault("snapshot.height", d.Snapshot.Height)
}

func setRefDefaults(v *viper.Viper, key string, p astro.ReferencePoint) {
	v.SetDefault(key+".name", p.Name)
	v.SetDefault(key+".ra_hours", p.RAHours)
	v.SetDefault(key+".ra_min", p.RAMin)
	v.SetDefault(key+".ra_sec", p.RASec)
	v.SetDefault(key+".dec_deg", p.DecDeg)
	v.SetDefault(key+".dist", p.Dist)
}

// Load reads the configuration into v and decodes it. An explicit path must
// exist; otherwise ./milkyway.yaml and ~/.milkyway/milkyway.yaml are tried and
// defaults are used when neither exists. Environment variables override both.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, configDir))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values no command can use.
func (c *Config) Validate() error {
	var problems []string
	if c.Cutoff <= 0 {
		problems = append(problems, fmt.Sprintf("cutoff must be positive, got %g", c.Cutoff))
	}
	if c.Scale <= 0 {
		problems = append(problems, fmt.Sprintf("scale must be positive, got %g", c.Scale))
	}
	if c.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers cannot be negative, got %d", c.Workers))
	}
	if _, err := logging.LookupLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Frame.Center.Dist <= 0 {
		problems = append(problems, "frame center distance must be positive")
	}
	if c.Viewer.Refresh <= 0 {
		problems = append(problems, "viewer refresh must be positive")
	}
	if c.Viewer.FovY <= 0 || c.Viewer.FovY >= 180 {
		problems = append(problems, fmt.Sprintf("viewer fov_y must be in (0, 180), got %g", c.Viewer.FovY))
	}
	if c.Viewer.CutoffFactor <= 1 {
		problems = append(problems, fmt.Sprintf("viewer cutoff_factor must exceed 1, got %g", c.Viewer.CutoffFactor))
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		problems = append(problems, fmt.Sprintf("snapshot size must be positive, got %dx%d", c.Snapshot.Width, c.Snapshot.Height))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// BuildFrame builds the galactic frame from the configured reference points.
func (c *Config) BuildFrame() astro.Frame {
	return astro.NewFrameFromReferences(c.Frame.Observer, c.Frame.Center, c.Frame.Pole)
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Write encodes cfg to w as YAML.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}
