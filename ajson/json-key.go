package ajson

import (
	"strings"
)

// JsonKey represents a key in a JSON object, which may include a path separated by dots.
type JsonKey string

// TrimSpace trims whitespace from the JsonKey and returns a new JsonKey.
func (jk JsonKey) TrimSpace() JsonKey {
	return JsonKey(strings.TrimSpace(string(jk)))
}

// String returns the JsonKey as a trimmed string.
func (jk JsonKey) String() string {
	return strings.TrimSpace(string(jk))
}

// IsRoot checks if the JsonKey is a root key (does not contain any dots).
func (jk JsonKey) IsRoot() bool {
	return !strings.Contains(jk.String(), ".")
}

// GetPathLeaf extracts the last part of the JsonKey path.
func (jk JsonKey) GetPathLeaf() JsonKey {
	if jk.IsRoot() {
		return jk.TrimSpace()
	}
	parts := jk.GetPathParts()
	return JsonKey(parts[len(parts)-1])
}

// GetPathParts splits the JsonKey path into its constituent parts.
func (jk JsonKey) GetPathParts() []string {
	return strings.Split(jk.String(), ".")
}
