// Package axis holds the axis selection state machine of the scatter chart.
//
// A Selector tracks which metric is mapped to each axis. The X axis accepts
// poverty, age and income; the Y axis accepts healthcare, smokes and obesity.
// Every effective change is published synchronously to the subscribers in the
// order they subscribed, so a listener that recomputes the regression always
// sees the selection of the event that triggered it. Selecting the metric that
// is already active is a no-op and publishes nothing.
//
// Range and Padding compute the padded scale domain of a column:
//
//	x, y, err := axis.DefaultPadding().Ranges(ds, sel.Selection())
//
// The Selector is not safe for concurrent use; drive it from one event loop.
package axis
