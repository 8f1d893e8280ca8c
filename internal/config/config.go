package config

import (
	"fmt"
	"os"
	"path/filepath"

	"invmerge/internal/logger"

	"github.com/BurntSushi/toml"
)

// Config holds the path tables the tool needs to find warehouse shares and
// the per-machine output directory. Platform keys are "windows" and "darwin".
type Config struct {
	Warehouses map[string]map[string]string `toml:"warehouses"`
	Output     map[string]OutputConfig      `toml:"output"`
}

// OutputConfig resolves the output directory for one platform. Dir is a fixed
// directory; Hosts maps a cleaned hostname to a directory and is consulted
// when Dir is empty.
type OutputConfig struct {
	Dir   string            `toml:"dir,omitempty"`
	Hosts map[string]string `toml:"hosts,omitempty"`
}

// Default returns the built-in path tables for the three warehouse shares and
// the known machines.
func Default() *Config {
	return &Config{
		Warehouses: map[string]map[string]string{
			"windows": {
				"OPL":  `\\192.168.10.18\Bodega General\LIVSMART\BODEGA OPL\STOCK ACTUALIZADO - OPL`,
				"E":    `\\192.168.10.18\Bodega General\LIVSMART\BODEGA E\STOCK ACTUALIZADO - BODEGA E`,
				"MOBU": `\\192.168.10.18\Bodega General\LIVSMART\BODEGAS MOBU\STOCK ACTUALIZADO - MOBU`,
			},
			"darwin": {
				"OPL":  "/Volumes/Bodega General/LIVSMART/BODEGA OPL/STOCK ACTUALIZADO - OPL/",
				"E":    "/Volumes/Bodega General/LIVSMART/BODEGA E/STOCK ACTUALIZADO - BODEGA E/",
				"MOBU": "/Volumes/Bodega General/LIVSMART/BODEGAS MOBU/STOCK ACTUALIZADO - MOBU/",
			},
		},
		Output: map[string]OutputConfig{
			"windows": {
				Dir: `C:\Users\josemaria\Downloads`,
			},
			"darwin": {
				Hosts: map[string]string{
					"JM-MBP": "/Users/j.m./Downloads",
					"JM-MS":  "/Users/jm/Downloads",
				},
			},
		},
	}
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create configs directory if it doesn't exist
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %v", err)
		}

		defaultConfig := Default()
		err = SaveConfig(configPath, defaultConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create default config: %v", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	// Load existing config
	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %v", configPath, err)
	}

	// Fill missing tables from the defaults so a partial config still runs
	defaults := Default()
	if len(config.Warehouses) == 0 {
		config.Warehouses = defaults.Warehouses
	}
	if len(config.Output) == 0 {
		config.Output = defaults.Output
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
