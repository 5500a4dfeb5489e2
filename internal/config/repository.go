package config

import "strings"

// Repository identifies a repository on the hosting platform.
type Repository struct {
	Owner string
	Name  string
}

// String returns the "owner/name" form.
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepository parses an "owner/repo" identifier.
//
// Surrounding whitespace is ignored. The identifier must consist of exactly
// two non-empty parts separated by a single slash; nested namespaces such as
// "group/sub/repo" are rejected because the languages endpoint is keyed by
// owner and repository only.
func ParseRepository(s string) (Repository, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Repository{}, newConfigurationError("repository", "", ErrNoRepository)
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, newConfigurationError("repository", s, ErrInvalidRepository)
	}
	if strings.ContainsAny(s, " \t") {
		return Repository{}, newConfigurationError("repository", s, ErrInvalidRepository)
	}

	return Repository{Owner: parts[0], Name: parts[1]}, nil
}
