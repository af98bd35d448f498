package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	CatalogPath    string   `toml:"catalog_path"`
	StorePath      string   `toml:"store_path"`
	DefaultAccount string   `toml:"default_account"`
	SolverCommand  string   `toml:"solver_command"`
	SolverArgs     []string `toml:"solver_args"`
	SolverSteps    uint32   `toml:"solver_steps"`
	MapDBDir       string   `toml:"mapdb_dir"`
	LogLevel       string   `toml:"log_level"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDataDir returns the directory holding the catalog, songs and account store
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), "idolplan")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "idolplan", "config.toml")
}

// Default returns the configuration written on first use
func Default() *Config {
	dataDir := GetDataDir()
	return &Config{
		CatalogPath:    filepath.Join(dataDir, "cards.json"),
		StorePath:      filepath.Join(dataDir, "accounts"),
		DefaultAccount: "main",
		SolverSteps:    2000,
		MapDBDir:       filepath.Join(dataDir, "mapdb"),
		LogLevel:       "info",
	}
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	// Start from defaults so keys missing from older files stay usable
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// SetDefaultAccount sets the default account in the config
func SetDefaultAccount(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultAccount = name
	return writeConfig(config)
}

// SongPath returns the chart file of a song. Song IDs never start with a
// zero digit, so the decimal form is the file name.
func (c *Config) SongPath(songID uint32) string {
	return filepath.Join(c.MapDBDir, strconv.FormatUint(uint64(songID), 10)+".json")
}
