// Package regression fits ordinary-least-squares lines through two survey metrics.
//
// The package is the computational core behind the regression overlay: given a
// dataset and the metrics mapped to the X and Y axes it returns the fitted line,
// its coefficient of determination and one predicted point per observation.
//
// # Usage
//
//	res, err := regression.Compute(ds, dataset.Poverty, dataset.Healthcare)
//	switch {
//	case errors.Is(err, errs.ErrDegenerateFit):
//	    // every x is identical; draw the scatter without a line
//	case err != nil:
//	    return err
//	}
//	fmt.Println(res.Formula, regression.FormatRSquared(res.RSquared))
//
// Raw columns can be fitted directly with Fit.
//
// # Method
//
// Two passes over the data: the first computes the means x̄ and ȳ, the second
// accumulates Σ(x−x̄)(y−ȳ) and Σ(x−x̄)². Then
//
//	slope     = Σ(x−x̄)(y−ȳ) / Σ(x−x̄)²
//	intercept = ȳ − slope·x̄
//	ŷᵢ        = intercept + slope·xᵢ
//	R²        = Σ(ŷ−ȳ)² / Σ(y−ȳ)²
//
// R² is reported as computed and is never clamped. When every y is identical the
// denominator is zero and R² is NaN while the line itself is still valid
// (slope 0 through ȳ).
//
// When Σ(x−x̄)² is zero the slope is undefined and the fit fails with
// *errs.DegenerateFitError instead of returning NaN or Inf coefficients. A
// single observation always hits this case.
//
// # Purity
//
// Fit and Compute have no side effects and keep no state between calls, so the
// same inputs always produce bit-identical results.
package regression
