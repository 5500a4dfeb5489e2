package config

import "strings"

// Environment variables read by langreport.
// GitHub Actions sets GITHUB_REPOSITORY and GITHUB_API_URL automatically.
const (
	EnvRepository = "GITHUB_REPOSITORY"
	EnvToken      = "GITHUB_TOKEN"
	EnvAPIURL     = "GITHUB_API_URL"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv copies settings from the environment onto the config.
// Unset or blank variables leave the config untouched.
func (c *Config) ApplyEnv(lookup LookupFunc) {
	if v, ok := lookupNonEmpty(lookup, EnvRepository); ok {
		c.Repository = v
	}
	if v, ok := lookupNonEmpty(lookup, EnvToken); ok {
		c.Token = v
	}
	if v, ok := lookupNonEmpty(lookup, EnvAPIURL); ok {
		c.APIBaseURL = strings.TrimRight(v, "/")
	}
}

// lookupNonEmpty returns the trimmed value of key if it is set and not blank.
func lookupNonEmpty(lookup LookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
