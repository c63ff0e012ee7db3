package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/specialistvlad/extloader/internal/component"
	"github.com/specialistvlad/extloader/internal/discovery"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnv.
const EnvPrefix = "EXTLOADER"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Mode is the deployment mode: "standard" or "bundled".
	Mode      string `default:"standard"`
	Namespace string `default:"browser.components"`

	// SearchPath lists the namespace directories scanned in standard mode.
	SearchPath []string `split_words:"true" default:"bundle/browser/components"`

	LogFormat string `split_words:"true" default:"text"`
	LogLevel  string `split_words:"true" default:"info"`
}

// ConfigFromEnv reads the configuration defaults from EXTLOADER_MODE,
// EXTLOADER_NAMESPACE, EXTLOADER_SEARCH_PATH (comma separated),
// EXTLOADER_LOG_FORMAT and EXTLOADER_LOG_LEVEL.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	mode, err := discovery.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	cfg.Mode = mode.String()

	if cfg.Namespace == "" {
		return nil, errors.New("Namespace is a required configuration field and cannot be empty")
	}
	for _, seg := range strings.Split(cfg.Namespace, component.Separator) {
		if !component.ValidSegment(seg) {
			return nil, fmt.Errorf("invalid namespace %q", cfg.Namespace)
		}
	}

	if mode == discovery.ModeStandard && len(cfg.SearchPath) == 0 {
		return nil, errors.New("SearchPath must not be empty in standard mode")
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return &cfg, nil
}
