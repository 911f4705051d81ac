package cli

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/healthplot/axis"
	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/config"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/internal/logger"
)

// sessionFlags are shared by the commands that build a chart session.
type sessionFlags struct {
	data       string
	config     string
	profile    string
	x, y       string
	regression bool
}

func (f *sessionFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.data, "data", "d", "", "input CSV (optionally .zst, .s2 or .lz4)")
	c.Flags().StringVar(&f.config, "config", "", "YAML profile file (optional)")
	c.Flags().StringVarP(&f.profile, "profile", "p", "", "profile name (default from config)")
	c.Flags().StringVar(&f.x, "x", "", "x-axis metric: poverty, age or income")
	c.Flags().StringVar(&f.y, "y", "", "y-axis metric: healthcare, smokes or obesity")
	_ = c.MarkFlagRequired("data")
}

func (f *sessionFlags) profileOnly() (config.Profile, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Profile{}, err
	}

	return cfg.Profile(f.profile)
}

// selection resolves --x/--y against the profile defaults.
func (f *sessionFlags) selection(p config.Profile) (axis.Selection, error) {
	sel := axis.Selection{X: p.DefaultX, Y: p.DefaultY}

	var err error
	if f.x != "" {
		if sel.X, err = axis.Parse(axis.X, f.x); err != nil {
			return axis.Selection{}, err
		}
	}
	if f.y != "" {
		if sel.Y, err = axis.Parse(axis.Y, f.y); err != nil {
			return axis.Selection{}, err
		}
	}

	return sel, nil
}

func (f *sessionFlags) open() (*chart.Session, error) {
	p, err := f.profileOnly()
	if err != nil {
		return nil, err
	}
	sel, err := f.selection(p)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.LoadFile(f.data)
	if err != nil {
		return nil, err
	}
	logger.L().Info("dataset.loaded", "path", f.data, "rows", ds.Len())

	return chart.NewSession(ds, p,
		chart.WithSelection(sel.X, sel.Y),
		chart.WithRegression(f.regression),
	)
}
