package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AppName is used for the config directory
const AppName = "rpr-test-launcher"

// DefaultScriptsDir is the directory next to the launcher that holds the
// runner and test scripts passed to Blender.
const DefaultScriptsDir = "cmd_tools"

// Config holds the application settings.
type Config struct {
	ScriptsDir string `toml:"scripts_dir"`
	BuildsDir  string `toml:"builds_dir"` // scanned for installed Blender builds
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	// Sensible default builds path (e.g., ~/blender/blender-builds)
	homeDir, _ := os.UserHomeDir() // Use UserHomeDir for safety
	defaultBuildsPath := filepath.Join(homeDir, "blender/blender-builds")

	return Config{
		ScriptsDir: DefaultScriptsDir,
		BuildsDir:  defaultBuildsPath,
	}
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir() // Gets ~/.config on Linux, appropriate paths on other OS
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}

	appConfigDir := filepath.Join(configDir, AppName)
	configFilePath := filepath.Join(appConfigDir, "config.toml")

	return configFilePath, nil
}

// LoadConfig loads the configuration from the default path.
// If the file doesn't exist, it returns default settings without error.
func LoadConfig() (Config, error) {
	cfgPath, err := GetConfigPath()
	if err != nil {
		return Config{}, err // Return zero Config and the error
	}

	cfg := DefaultConfig() // Start with defaults

	// Check if config file exists
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		// Config file doesn't exist, return defaults quietly
		return cfg, nil
	} else if err != nil {
		// Other error reading file stat
		return Config{}, fmt.Errorf("could not stat config file %s: %w", cfgPath, err)
	}

	// File exists, try to load it
	if _, err := toml.DecodeFile(cfgPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config file %s: %w", cfgPath, err)
	}

	// Expand ~ in BuildsDir if present
	if cfg.BuildsDir != "" && cfg.BuildsDir[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("could not get home directory to expand path: %w", err)
		}
		cfg.BuildsDir = filepath.Join(homeDir, cfg.BuildsDir[1:])
	}

	// An empty scripts_dir would make the launcher pass bare script names
	// to Blender; fall back to the default layout instead.
	if cfg.ScriptsDir == "" {
		cfg.ScriptsDir = DefaultScriptsDir
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the default path.
// It creates the config directory if it doesn't exist.
func SaveConfig(cfg Config) error {
	cfgPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	appConfigDir := filepath.Dir(cfgPath)

	// Create the config directory if it doesn't exist
	if err := os.MkdirAll(appConfigDir, 0750); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", appConfigDir, err)
	}

	// Create and open the file for writing
	file, err := os.Create(cfgPath)
	if err != nil {
		return fmt.Errorf("could not create config file %s: %w", cfgPath, err)
	}
	defer file.Close()

	// Encode the config to the file
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("could not encode config to file %s: %w", cfgPath, err)
	}

	return nil
}
