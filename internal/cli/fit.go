package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/internal/logger"
	"github.com/arloliu/healthplot/regression"
)

func fitCmd() *cobra.Command {
	var (
		data, x, y string
		predict    []float64
	)

	c := &cobra.Command{
		Use:   "fit",
		Short: "Print the OLS fit of y against x",
		RunE: func(cmd *cobra.Command, _ []string) error {
			xm, err := dataset.ParseMetric(x)
			if err != nil {
				return err
			}
			ym, err := dataset.ParseMetric(y)
			if err != nil {
				return err
			}

			ds, err := dataset.LoadFile(data)
			if err != nil {
				return err
			}
			logger.L().Info("dataset.loaded", "path", data, "rows", ds.Len())

			res, err := regression.Compute(ds, xm, ym)
			if err != nil {
				return err
			}
			logger.L().Debug("regression.computed", "x", res.X, "y", res.Y, "r2", res.RSquared)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "x:         %s\n", res.X)
			fmt.Fprintf(w, "y:         %s\n", res.Y)
			fmt.Fprintf(w, "model:     %s\n", res.Estimator.Type())
			fmt.Fprintf(w, "n:         %d\n", res.N)
			fmt.Fprintf(w, "slope:     %.6f\n", res.Slope)
			fmt.Fprintf(w, "intercept: %.6f\n", res.Intercept)
			fmt.Fprintf(w, "rmse:      %.6f\n", res.RMSE)
			fmt.Fprintf(w, "formula:   %s\n", res.Formula)
			fmt.Fprintln(w, regression.FormatRSquared(res.RSquared))
			for _, px := range predict {
				fmt.Fprintf(w, "predict:   %s=%g -> %s=%.6f\n", res.X, px, res.Y, res.Estimator.Estimate(px))
			}

			return nil
		},
	}

	c.Flags().StringVarP(&data, "data", "d", "", "input CSV (optionally .zst, .s2 or .lz4)")
	c.Flags().StringVar(&x, "x", "poverty", "independent metric (any of the six)")
	c.Flags().StringVar(&y, "y", "healthcare", "dependent metric (any of the six)")
	c.Flags().Float64SliceVar(&predict, "predict", nil, "x values to evaluate the fitted line at")
	_ = c.MarkFlagRequired("data")

	return c
}
