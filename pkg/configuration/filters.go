package configuration

import (
	"strings"
)

// ExtendFilter appends the comma-separated entries of each filter to list.
// The result is never nil: calling with no filters marks the option as
// "match everything" while leaving earlier entries in place.
func ExtendFilter(list []string, filters ...string) []string {
	if list == nil {
		list = []string{}
	}
	for _, filter := range filters {
		for _, entry := range strings.Split(filter, ",") {
			entry = strings.TrimSpace(entry)
			if entry != "" {
				list = append(list, entry)
			}
		}
	}
	return list
}

// MatchesAll reports whether a filter list was given without entries
func MatchesAll(list []string) bool {
	return list != nil && len(list) == 0
}
