package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// StateID computes the observation ID for a state abbreviation.
// The abbreviation is trimmed and upper-cased first, so "ca", " CA" and "CA" share an ID.
func StateID(abbr string) uint64 {
	return ID(strings.ToUpper(strings.TrimSpace(abbr)))
}
