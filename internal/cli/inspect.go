package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	var (
		sf    sessionFlags
		state string
	)

	c := &cobra.Command{
		Use:   "inspect",
		Short: "Print the tooltip of one state under a selection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sf.open()
			if err != nil {
				return err
			}
			defer s.Close()

			tip, err := s.Tooltip(state)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, tip)

			res, _ := s.Regression()
			if res != nil {
				o, _ := s.Dataset().Lookup(state)
				sel := s.Selection()
				fmt.Fprintf(w, "fitted %s: %.4f\n", sel.Y, res.Estimator.Estimate(o.Value(sel.X)))
			}

			return nil
		},
	}

	sf.register(c)
	c.Flags().StringVarP(&state, "state", "s", "", "state abbreviation, e.g. CA")
	c.Flags().BoolVarP(&sf.regression, "regression", "r", false, "also print the fitted value")
	_ = c.MarkFlagRequired("state")

	return c
}
