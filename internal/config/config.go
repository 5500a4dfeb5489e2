package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "langreport"

	// DefaultDocumentPath is the document rewritten when no path is given.
	DefaultDocumentPath = "README.md"

	// DefaultStartMarker opens the generated block.
	DefaultStartMarker = "<!--LANGUAGE_SECTION_START-->"

	// DefaultEndMarker closes the generated block.
	DefaultEndMarker = "<!--LANGUAGE_SECTION_END-->"

	// DefaultAPIBaseURL is the public GitHub REST API endpoint.
	// GitHub Enterprise users override it with GITHUB_API_URL or --api-url.
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultAcceptHeader requests version 3 of the GitHub REST API.
	DefaultAcceptHeader = "application/vnd.github.v3+json"

	// DefaultTimeout bounds the single API request.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies langreport in API requests.
	// GitHub rejects requests that carry no User-Agent at all.
	DefaultUserAgent = "langreport (+https://github.com/nao1215/langreport)"

	// DefaultMaxBodySize limits how much of the API response is read.
	// A languages payload is a few hundred bytes; 1MB is generous.
	DefaultMaxBodySize = 1024 * 1024
)

// Config holds all configuration options for one langreport run.
// It is populated from defaults, the configuration file, the environment
// and command line flags, in that order of increasing precedence.
type Config struct {
	// Repository is the "owner/repo" identifier whose languages are reported.
	Repository string

	// Token is an optional access token sent as a bearer token.
	Token string

	// DocumentPath is the file whose marker block is rewritten.
	DocumentPath string

	// StartMarker and EndMarker delimit the generated block in the document.
	StartMarker string
	EndMarker   string

	// APIBaseURL is the base URL of the GitHub REST API, without trailing slash.
	APIBaseURL string

	// AcceptHeader is the media type sent in the Accept header.
	AcceptHeader string

	// Timeout is the timeout for the API request.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with the API request.
	UserAgent string

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// When empty, the API is reached directly.
	ProxyAddress string

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// PieChart appends a mermaid pie chart below the language table.
	PieChart bool

	// DryRun computes the new document without writing it.
	DryRun bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DocumentPath: DefaultDocumentPath,
		StartMarker:  DefaultStartMarker,
		EndMarker:    DefaultEndMarker,
		APIBaseURL:   DefaultAPIBaseURL,
		AcceptHeader: DefaultAcceptHeader,
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		MaxBodySize:  DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the XDG config directory for langreport.
// On Linux: ~/.config/langreport
// On macOS: ~/Library/Application Support/langreport
// On Windows: %APPDATA%\langreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a *ConfigurationError.
func (c *Config) Validate() error {
	if _, err := ParseRepository(c.Repository); err != nil {
		return err
	}

	if c.DocumentPath == "" {
		return newConfigurationError("document", "", ErrNoDocument)
	}

	if err := validateMarkers(c.StartMarker, c.EndMarker); err != nil {
		return err
	}

	if c.Timeout <= 0 {
		return newConfigurationError("timeout", c.Timeout.String(), ErrInvalidTimeout)
	}

	if c.MaxBodySize <= 0 {
		return newConfigurationError("maxBodySize", "", ErrInvalidMaxBodySize)
	}

	if c.ProxyAddress != "" && !isValidProxyAddress(c.ProxyAddress) {
		return newConfigurationError("proxy", c.ProxyAddress, ErrInvalidProxyAddress)
	}

	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return newConfigurationError("apiURL", c.APIBaseURL, ErrInvalidAPIBaseURL)
	}

	return nil
}

// validateMarkers checks that both markers are usable as block delimiters.
func validateMarkers(start, end string) error {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return newConfigurationError("markers", "", ErrInvalidMarkers)
	}
	if start == end {
		return newConfigurationError("markers", start, ErrInvalidMarkers)
	}
	if strings.ContainsAny(start, "\r\n") || strings.ContainsAny(end, "\r\n") {
		return newConfigurationError("markers", "", ErrInvalidMarkers)
	}
	return nil
}

// isValidProxyAddress checks if the address is in "host:port" format
// with a numeric port between 1 and 65535.
func isValidProxyAddress(address string) bool {
	parts := strings.Split(address, ":")
	if len(parts) != 2 {
		return false
	}

	host, port := parts[0], parts[1]
	if host == "" || port == "" {
		return false
	}

	portNum := 0
	for _, c := range port {
		if c < '0' || c > '9' {
			return false
		}
		portNum = portNum*10 + int(c-'0')
		if portNum > 65535 {
			return false
		}
	}
	return portNum >= 1
}
