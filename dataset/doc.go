// Package dataset holds the survey observations plotted by healthplot.
//
// Each Observation is one U.S. state: its name, its postal abbreviation and six
// metrics (poverty, age, income, healthcare, obesity, smokes). A Dataset is
// the ordered, immutable collection loaded once per session.
//
// # Loading
//
// LoadFile reads a CSV file, decompressing it first when the suffix names a
// codec (.zst, .s2, .lz4):
//
//	ds, err := dataset.LoadFile("assets/data/data.csv")
//	if err != nil {
//	    return err // *errs.DataLoadError, fatal
//	}
//	povertyCol, _ := ds.Column(dataset.Poverty)
//
// The header row must name the columns state, abbr, poverty, age, income,
// healthcare, obesity and smokes, in any order. Other columns (margins of
// error, ids) are ignored.
//
// # Invariants
//
//   - every metric is finite and non-negative
//   - abbreviations are unique, compared case-insensitively
//   - observation IDs are xxHash64 of the upper-cased abbreviation
package dataset
