// Package chart ties the dataset, the axis selector and the regression engine
// into a drawable session.
//
// A Session owns one dataset and one profile. UI events (SelectX, SelectY,
// SetRegression) go through the session's axis.Selector; the session listens
// to the selector and, within the same call, recomputes the padded ranges and,
// when the overlay is enabled, the regression for the new selection. Frame
// returns an immutable snapshot that a Renderer turns into an image, a
// terminal chart or JSON.
//
// A degenerate fit is not an error of the session: the overlay is suppressed,
// FitFailure carries a neutral message and the scatter is still drawn.
//
// Sessions are not safe for concurrent use.
package chart
