package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type ConfigCache struct {
	sourcesDir string
	cache      map[string]*Config
	mu         sync.RWMutex
}

func NewConfigCache(sourcesDir string) *ConfigCache {
	return &ConfigCache{
		sourcesDir: sourcesDir,
		cache:      make(map[string]*Config),
	}
}

func (cc *ConfigCache) Run() error {
	if _, err := os.Stat(cc.sourcesDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(cc.sourcesDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		fileName := filepath.Base(file)
		sourceName := fileName[:len(fileName)-4] // Remove .yml extension

		config, err := cc.LoadConfig(sourceName)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Source configuration loaded", "source", sourceName,
			"type", config.Type, "enabled", config.Settings.Enabled)
	}

	return nil
}

func (cc *ConfigCache) LoadConfig(sourceName string) (*Config, error) {
	configFile := filepath.Join(cc.sourcesDir, sourceName+".yml")

	config, err := cc.parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	config.Name = sourceName

	cc.mu.Lock()
	cc.cache[sourceName] = config
	cc.mu.Unlock()

	return config, nil
}

func (cc *ConfigCache) GetConfig(sourceName string) (*Config, error) {
	cc.mu.RLock()
	config, ok := cc.cache[sourceName]
	cc.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("source configuration not found: %s", sourceName)
	}
	return config, nil
}

func (cc *ConfigCache) GetConfigs() map[string]*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	configs := make(map[string]*Config, len(cc.cache))
	for name, config := range cc.cache {
		configs[name] = config
	}
	return configs
}

func (cc *ConfigCache) GetEnabledConfigs() map[string]*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	configs := make(map[string]*Config)
	for name, config := range cc.cache {
		if config.Settings.Enabled {
			configs[name] = config
		}
	}
	return configs
}

func (cc *ConfigCache) GetConfigCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.cache)
}

func (cc *ConfigCache) parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cc.setDefaults(&config)

	if err := cc.validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (cc *ConfigCache) setDefaults(config *Config) {
	if config.Settings.Limit == 0 {
		config.Settings.Limit = 50
	}
	if config.Settings.DaysBack == 0 {
		config.Settings.DaysBack = 7
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = 30
	}
}

func (cc *ConfigCache) validate(config *Config) error {
	switch config.Type {
	case TypeReader, TypeTable, TypeRSS:
	default:
		return fmt.Errorf("unknown source type: %q", config.Type)
	}

	if config.URL == "" && len(config.Endpoints) == 0 {
		return fmt.Errorf("source requires a url or an endpoints list")
	}

	return nil
}
