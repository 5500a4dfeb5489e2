package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".langreport"

// xdgConfigFile is the configuration file name inside the XDG config directory.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// MarkerConfig holds the block markers in the configuration file.
type MarkerConfig struct {
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
}

// APIConfig holds API connection settings in the configuration file.
type APIConfig struct {
	// URL overrides the GitHub REST API base URL.
	URL string `yaml:"url,omitempty"`

	// Timeout is the request timeout (e.g., "30s").
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Proxy is an optional SOCKS5 proxy address ("host:port").
	Proxy string `yaml:"proxy,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`
}

// File represents the structure of the .langreport configuration file.
// The access token is deliberately absent: it is read from the environment only.
type File struct {
	// Repository is the "owner/repo" identifier.
	Repository string `yaml:"repository,omitempty"`

	// Document is the path of the file to rewrite.
	Document string `yaml:"document,omitempty"`

	// Markers overrides the block delimiters.
	Markers MarkerConfig `yaml:"markers,omitempty"`

	// API holds connection settings.
	API APIConfig `yaml:"api,omitempty"`

	// PieChart appends a mermaid pie chart to the generated block.
	PieChart bool `yaml:"pieChart,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .langreport in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .langreport in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// ApplyFile copies every setting present in the file onto the config.
// Empty values in the file leave the config untouched.
func (c *Config) ApplyFile(cf *File) {
	if cf == nil {
		return
	}
	if cf.Repository != "" {
		c.Repository = cf.Repository
	}
	if cf.Document != "" {
		c.DocumentPath = cf.Document
	}
	if cf.Markers.Start != "" {
		c.StartMarker = cf.Markers.Start
	}
	if cf.Markers.End != "" {
		c.EndMarker = cf.Markers.End
	}
	if cf.API.URL != "" {
		c.APIBaseURL = cf.API.URL
	}
	if cf.API.Timeout != 0 {
		c.Timeout = cf.API.Timeout
	}
	if cf.API.Proxy != "" {
		c.ProxyAddress = cf.API.Proxy
	}
	if cf.API.UserAgent != "" {
		c.UserAgent = cf.API.UserAgent
	}
	if cf.PieChart {
		c.PieChart = true
	}
}
