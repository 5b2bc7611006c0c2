package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/glintclean/weekplan/core/metrics"
)

type Config struct {
	Logging LoggingConfig  `json:"logging"`
	Metrics metrics.Config `json:"metrics"`
	Hours   HoursConfig    `json:"hours"`
	Planner PlannerConfig  `json:"planner"`
}

// Load reads the configuration file and applies WP_ environment overrides.
// A missing file is not an error: defaults are used so the CLI works out of
// the box.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	return unmarshal(k)
}

// Defaults returns a configuration with every section at its default,
// still honoring WP_ environment overrides.
func Defaults() (*Config, error) {
	return unmarshal(koanf.New("."))
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	if err := k.Load(env.Provider("WP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "wp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Hours.SetDefaults()
	cfg.Planner.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Hours.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
