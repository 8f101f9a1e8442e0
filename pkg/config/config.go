package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines runtime settings for packrun.
type Config struct {
	// StorageRoot is the volume bare script paths are rooted at.
	StorageRoot string `yaml:"storageRoot"`
	// ProtectedFolders are refused as destructive targets unless the path
	// descends into them without dangerous segments. Superset of the ultra
	// tier.
	ProtectedFolders []string `yaml:"protectedFolders"`
	// UltraProtectedFolders are refused outright, any suffix included.
	UltraProtectedFolders []string `yaml:"ultraProtectedFolders"`
	LogLevel              string   `yaml:"logLevel"`
	Download              Download `yaml:"download"`
}

type Download struct {
	Timeout   string `yaml:"timeout"`
	MaxBytes  int64  `yaml:"maxBytes"`
	UserAgent string `yaml:"userAgent"`
}

// LoadConfig loads configuration from a YAML file and environment overrides.
// An empty path yields the built-in console defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if root := os.Getenv("PACKRUN_STORAGE_ROOT"); root != "" {
		cfg.StorageRoot = root
	}
	if logLevel := os.Getenv("PACKRUN_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if cfg.StorageRoot == "" {
		return nil, fmt.Errorf("storageRoot must not be empty")
	}
	return cfg, nil
}

// Default returns the stock console layout: the tiers mirror the directories
// a bad script would hurt most.
func Default() *Config {
	return &Config{
		StorageRoot: "sdmc:/",
		ProtectedFolders: []string{
			"sdmc:/Nintendo/",
			"sdmc:/emuMMC/",
			"sdmc:/atmosphere/",
			"sdmc:/bootloader/",
			"sdmc:/switch/",
			"sdmc:/config/",
			"sdmc:/",
		},
		UltraProtectedFolders: []string{
			"sdmc:/Nintendo/",
			"sdmc:/emuMMC/",
		},
		LogLevel: "info",
		Download: Download{
			Timeout:   "60s",
			UserAgent: "packrun",
		},
	}
}

// DownloadTimeout parses the download timeout, falling back to a minute.
func (c *Config) DownloadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Download.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// DefaultConfigPath returns the default location for the CLI config file.
func DefaultConfigPath() string {
	if path := os.Getenv("PACKRUN_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".packrun", "config.yaml")
}
