package cli

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/healthplot/internal/tui"
)

func tuiCmd() *cobra.Command {
	var sf sessionFlags

	c := &cobra.Command{
		Use:   "tui",
		Short: "Explore the chart interactively in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := sf.open()
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(s)
		},
	}

	sf.register(c)
	c.Flags().BoolVarP(&sf.regression, "regression", "r", false, "start with the regression overlay")

	return c
}
