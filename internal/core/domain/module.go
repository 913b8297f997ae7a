package domain

import "strings"

// Training modules are plain names. The list the operator curates is ordered,
// every name is unique, and every name is non-empty after trimming.

// NormalizeModuleName trims incidental whitespace from a module name.
func NormalizeModuleName(name string) string {
	return strings.TrimSpace(name)
}

// DefaultSeed returns the factory training-module list.
func DefaultSeed() []string {
	return []string{"Text Commands", "Avatar", "Video"}
}

// NormalizeSeed prepares a seed list for a module store: each name is
// trimmed, empty names are dropped, and duplicates keep only their first
// occurrence. Order of the surviving names is preserved.
func NormalizeSeed(seed []string) []string {
	result := make([]string, 0, len(seed))
	seen := make(map[string]struct{}, len(seed))

	for _, name := range seed {
		name = NormalizeModuleName(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result
}
