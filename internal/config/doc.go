// Package config provides configuration structures and utilities for langreport.
// It defines the repository to report on, the document to patch, the markers
// that delimit the generated block, and how the GitHub API is reached.
package config
