package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Fonts  FontConfig   `json:"fonts"`
	Colors ColorConfig  `json:"colors"`
	Input  InputConfig  `json:"input"`
	Output OutputConfig `json:"output"`
}

// FontConfig holds the title plate font settings
type FontConfig struct {
	// Path to a TTF/OTF display font; empty means the bundled face.
	Path string `json:"path"`
}

// ColorConfig holds the default plate colors (hex, "#RRGGBB")
type ColorConfig struct {
	PlateBackground string `json:"plate_background"`
	PlateText       string `json:"plate_text"`
}

// InputConfig holds configuration for locating source material
type InputConfig struct {
	LogoDir  string  `json:"logo_dir"`
	VideoDir string  `json:"video_dir"`
	Timecode float64 `json:"timecode"`
}

// OutputConfig holds configuration for thumbnail output
type OutputConfig struct {
	Dir     string `json:"dir"`
	Format  string `json:"format"`
	Quality int    `json:"quality"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Fonts: FontConfig{},
		Colors: ColorConfig{
			PlateBackground: "#FFFFFF",
			PlateText:       "#000000",
		},
		Input: InputConfig{
			LogoDir:  "./logos",
			VideoDir: ".",
			Timecode: 0.5,
		},
		Output: OutputConfig{
			Dir:     "./thumbnails",
			Format:  "jpg",
			Quality: 90,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	switch c.Output.Format {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("output.format must be jpg, png or webp")
	}

	if c.Input.Timecode < 0 || c.Input.Timecode > 1 {
		return fmt.Errorf("input.timecode must be between 0 and 1")
	}

	if c.Input.LogoDir == "" {
		return fmt.Errorf("input.logo_dir cannot be empty")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "thumbgen", "config.json")
}
