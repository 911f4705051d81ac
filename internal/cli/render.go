package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/errs"
	"github.com/arloliu/healthplot/format"
	"github.com/arloliu/healthplot/internal/logger"
	"github.com/arloliu/healthplot/render/jsonframe"
	"github.com/arloliu/healthplot/render/svgchart"
	"github.com/arloliu/healthplot/render/termchart"
)

func renderCmd() *cobra.Command {
	var (
		sf     sessionFlags
		out    string
		output string
	)

	c := &cobra.Command{
		Use:   "render",
		Short: "Render the scatter plot to an image, JSON or text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ot, err := resolveOutput(output, out)
			if err != nil {
				return err
			}
			r, err := newRenderer(ot)
			if err != nil {
				return err
			}

			s, err := sf.open()
			if err != nil {
				return err
			}
			defer s.Close()

			if _, fitErr := s.Regression(); fitErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), chart.FitFailureMessage)
			}

			if out == "" || out == "-" {
				return s.Render(cmd.OutOrStdout(), r)
			}
			if err := writeFile(out, func(w io.Writer) error { return s.Render(w, r) }); err != nil {
				return err
			}
			logger.L().Info("render.done", "out", out, "format", ot.String())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, ot)

			return nil
		},
	}

	sf.register(c)
	c.Flags().BoolVarP(&sf.regression, "regression", "r", false, "overlay the regression line")
	c.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout")
	c.Flags().StringVarP(&output, "format", "f", "", "svg, png, json or text (default from --out suffix)")

	return c
}

func resolveOutput(name, out string) (format.OutputType, error) {
	if name != "" {
		ot, ok := format.ParseOutput(name)
		if !ok {
			return 0, fmt.Errorf("%w: output %q", errs.ErrUnsupportedFormat, name)
		}
		return ot, nil
	}
	if out == "" || out == "-" {
		return format.OutputText, nil
	}

	return format.OutputFromPath(out), nil
}

func newRenderer(ot format.OutputType) (chart.Renderer, error) {
	switch ot {
	case format.OutputSVG, format.OutputPNG:
		return svgchart.New(svgchart.WithFormat(ot))
	case format.OutputJSON:
		return jsonframe.New(jsonframe.WithIndent("  "))
	case format.OutputText:
		return termchart.New()
	default:
		return nil, fmt.Errorf("%w: output %s", errs.ErrUnsupportedFormat, ot)
	}
}

// writeFile writes through a temp file and renames it into place.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
