package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arloliu/healthplot/axis"
	"github.com/arloliu/healthplot/errs"
)

// MapConfig merges dto over the built-in profiles and validates the result.
func MapConfig(path string, dto YAMLConfig) (*Config, error) {
	cfg := Default()

	for rawName, yp := range dto.Profiles {
		name := strings.ToLower(strings.TrimSpace(rawName))
		if name == "" {
			return nil, invalidField(path, "profiles", errors.New("profile name is required"))
		}

		base, ok := cfg.Profiles[name]
		if !ok {
			base = cfg.Profiles[ProfileInteractive]
			base.Name = name
			base.Title = ""
		}

		p, err := mapProfile(path, base, yp)
		if err != nil {
			return nil, err
		}
		cfg.Profiles[name] = p
	}

	if def := strings.ToLower(strings.TrimSpace(dto.DefaultProfile)); def != "" {
		if _, ok := cfg.Profiles[def]; !ok {
			return nil, invalidField(path, "default_profile", fmt.Errorf("%w: %q", errs.ErrUnknownProfile, def))
		}
		cfg.DefaultProfile = def
	}

	for _, name := range cfg.Names() {
		if err := cfg.Profiles[name].Validate(); err != nil {
			return nil, &Error{Op: "config.validate", Path: path, Err: err}
		}
	}

	return cfg, nil
}

func mapProfile(path string, p Profile, yp YAMLProfile) (Profile, error) {
	field := "profiles." + p.Name

	setString(&p.Title, yp.Title)
	setInt(&p.Width, yp.Width)
	setInt(&p.Height, yp.Height)
	setBool(&p.AxisSwitching, yp.AxisSwitching)
	setBool(&p.RegressionToggle, yp.RegressionToggle)

	if yp.Padding != nil {
		setFloat(&p.Padding.XMin, yp.Padding.XMin)
		setFloat(&p.Padding.XMax, yp.Padding.XMax)
		setFloat(&p.Padding.YMin, yp.Padding.YMin)
		setFloat(&p.Padding.YMax, yp.Padding.YMax)
	}
	if yp.Margin != nil {
		setInt(&p.Margin.Top, yp.Margin.Top)
		setInt(&p.Margin.Right, yp.Margin.Right)
		setInt(&p.Margin.Bottom, yp.Margin.Bottom)
		setInt(&p.Margin.Left, yp.Margin.Left)
	}

	if yp.DefaultX != nil {
		m, err := axis.Parse(axis.X, *yp.DefaultX)
		if err != nil {
			return Profile{}, invalidField(path, field+".default_x", err)
		}
		p.DefaultX = m
	}
	if yp.DefaultY != nil {
		m, err := axis.Parse(axis.Y, *yp.DefaultY)
		if err != nil {
			return Profile{}, invalidField(path, field+".default_y", err)
		}
		p.DefaultY = m
	}

	return p, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func invalidField(path, field string, err error) error {
	return &Error{
		Op:   "config.map",
		Path: path,
		Err:  fmt.Errorf("field %s: %w", field, err),
	}
}
