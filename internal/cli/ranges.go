package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func rangesCmd() *cobra.Command {
	var sf sessionFlags

	c := &cobra.Command{
		Use:   "ranges",
		Short: "Print the padded axis ranges of a selection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sf.open()
			if err != nil {
				return err
			}
			defer s.Close()

			sel := s.Selection()
			x, y := s.Ranges()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "x %-10s %.4f %.4f\n", sel.X, x.Min, x.Max)
			fmt.Fprintf(w, "y %-10s %.4f %.4f\n", sel.Y, y.Min, y.Max)

			return nil
		},
	}

	sf.register(c)

	return c
}
