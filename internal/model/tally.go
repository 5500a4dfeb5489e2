package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateLanguage is returned when a tally contains the same language twice.
var ErrDuplicateLanguage = errors.New("duplicate language in tally")

// ErrNegativeBytes is returned when a language has a negative byte count.
var ErrNegativeBytes = errors.New("negative byte count in tally")

// LanguageBytes is one entry of a language tally.
type LanguageBytes struct {
	// Name is the language name as reported by the platform (e.g., "Go").
	Name string `json:"name"`

	// Bytes is the number of bytes of source written in this language.
	Bytes int64 `json:"bytes"`
}

// Tally holds per-language byte counts in the order the platform returned them.
// A slice is used instead of a map so that ties in byte count keep the
// source order when the tally is sorted.
type Tally []LanguageBytes

// Total returns the sum of all byte counts.
func (t Tally) Total() int64 {
	var total int64
	for _, lb := range t {
		total += lb.Bytes
	}
	return total
}

// Validate checks that language names are unique and byte counts are non-negative.
func (t Tally) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for _, lb := range t {
		if lb.Bytes < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeBytes, lb.Name, lb.Bytes)
		}
		if _, ok := seen[lb.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateLanguage, lb.Name)
		}
		seen[lb.Name] = struct{}{}
	}
	return nil
}

// Names returns the language names in tally order.
func (t Tally) Names() []string {
	names := make([]string, len(t))
	for i, lb := range t {
		names[i] = lb.Name
	}
	return names
}
