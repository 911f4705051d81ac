package collision

import (
	"github.com/arloliu/healthplot/errs"
)

// Tracker tracks state abbreviations and detects ID collisions while a dataset is loaded.
// It maintains a map of ID-to-abbreviation mappings and an ordered list of abbreviations
// so the dataset can fall back to name lookups when two abbreviations share an ID.
type Tracker struct {
	abbrs        map[uint64]string // ID → abbreviation mapping for collision detection
	abbrList     []string          // Ordered list, matches row order
	hasCollision bool              // Whether a collision has been detected
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		abbrs:    make(map[uint64]string),
		abbrList: make([]string, 0),
	}
}

// Track records an abbreviation with its ID.
// Returns error if:
// - The abbreviation is empty (ErrInvalidAbbreviation)
// - The same abbreviation is added twice (ErrDuplicateObservation)
//
// Note: ID collisions (different abbreviations, same ID) are NOT errors here.
// The collision flag is set instead and lookups switch to comparing abbreviations.
func (t *Tracker) Track(abbr string, id uint64) error {
	if abbr == "" {
		return errs.ErrInvalidAbbreviation
	}

	if existing, exists := t.abbrs[id]; exists {
		if existing == abbr {
			return errs.ErrDuplicateObservation
		}
		t.hasCollision = true
	}

	t.abbrs[id] = abbr
	t.abbrList = append(t.abbrList, abbr)

	return nil
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Abbreviations returns the tracked abbreviations in the order Track was called.
func (t *Tracker) Abbreviations() []string {
	return t.abbrList
}

// Count returns the number of tracked abbreviations.
func (t *Tracker) Count() int {
	return len(t.abbrList)
}

// Reset clears all tracked abbreviations and collision state.
func (t *Tracker) Reset() {
	for k := range t.abbrs {
		delete(t.abbrs, k)
	}
	t.abbrList = t.abbrList[:0]
	t.hasCollision = false
}
