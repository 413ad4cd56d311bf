package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config file search locations.
const (
	// GlobalConfigDir is the XDG config directory name
	GlobalConfigDir = "bigclock"
	// GlobalConfigFile is the global config file name
	GlobalConfigFile = "config.yaml"
)

// LoadConfig loads configuration from files and viper settings.
// Precedence (later overrides earlier):
//  1. Default() values
//  2. ~/.config/bigclock/config.yaml (global)
//  3. Explicit --config file (must exist when given)
//  4. Environment variables (BIGCLOCK_*)
//  5. CLI flags (already bound to viper)
//
// A missing global config file is silently ignored.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := Default()

	// Marshal defaults to map for viper
	defaultMap, err := structToMap(cfg)
	if err != nil {
		return nil, err
	}
	if err := v.MergeConfigMap(defaultMap); err != nil {
		return nil, err
	}

	if globalPath := globalConfigPath(); globalPath != "" {
		if err := loadConfigFile(v, globalPath); err != nil {
			return nil, err
		}
	}

	// Explicit config file (from --config flag or BIGCLOCK_CONFIG env)
	if explicitPath := v.GetString("config"); explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, err
		}
		if err := loadConfigFile(v, explicitPath); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// globalConfigPath returns the global config file path if it exists.
func globalConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}

	path := filepath.Join(configDir, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// loadConfigFile loads a YAML config file and merges it into viper.
// Returns nil if the file doesn't exist.
func loadConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	// Read through a temporary viper so settings merge instead of replace
	fileViper := viper.New()
	fileViper.SetConfigType("yaml")
	if err := fileViper.ReadConfig(file); err != nil {
		return err
	}

	return v.MergeConfigMap(fileViper.AllSettings())
}

// structToMap converts a struct to a map for viper.MergeConfigMap.
func structToMap(cfg *Config) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "mapstructure",
		Result:  &result,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	return result, nil
}
