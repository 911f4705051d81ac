package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/healthplot/axis"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
)

// Built-in profile names.
const (
	ProfileBasic       = "basic"
	ProfileRegression  = "regression"
	ProfileInteractive = "interactive"
)

// Margin is the space around the plot area, in pixels.
type Margin struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Profile is one named chart configuration.
type Profile struct {
	Name    string
	Title   string
	Padding axis.Padding
	// Width and Height are the full canvas size in pixels.
	Width  int
	Height int
	Margin Margin
	// AxisSwitching allows changing the metric of either axis.
	AxisSwitching bool
	// RegressionToggle allows enabling the regression overlay.
	RegressionToggle bool
	DefaultX         dataset.Metric
	DefaultY         dataset.Metric
}

// PlotWidth returns the width left for the plot area.
func (p Profile) PlotWidth() int {
	return p.Width - p.Margin.Left - p.Margin.Right
}

// PlotHeight returns the height left for the plot area.
func (p Profile) PlotHeight() int {
	return p.Height - p.Margin.Top - p.Margin.Bottom
}

// Validate checks padding, geometry and default axes.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("profile name is required")
	}
	if err := p.Padding.Validate(); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if p.PlotWidth() <= 0 || p.PlotHeight() <= 0 {
		return fmt.Errorf("profile %s: margins leave no plot area in %dx%d", p.Name, p.Width, p.Height)
	}
	if p.Margin.Top < 0 || p.Margin.Right < 0 || p.Margin.Bottom < 0 || p.Margin.Left < 0 {
		return fmt.Errorf("profile %s: negative margin", p.Name)
	}
	if err := axis.Check(axis.X, p.DefaultX); err != nil {
		return fmt.Errorf("profile %s: default_x: %w", p.Name, err)
	}
	if err := axis.Check(axis.Y, p.DefaultY); err != nil {
		return fmt.Errorf("profile %s: default_y: %w", p.Name, err)
	}

	return nil
}

// Config is the full set of profiles.
type Config struct {
	DefaultProfile string
	Profiles       map[string]Profile
}

// Default returns the built-in profiles with "interactive" as default.
func Default() *Config {
	profiles := builtinProfiles()
	out := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		out[p.Name] = p
	}

	return &Config{DefaultProfile: ProfileInteractive, Profiles: out}
}

// Profile returns the named profile; an empty name selects DefaultProfile.
func (c *Config) Profile(name string) (Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = c.DefaultProfile
	}

	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, &Error{
			Op:  "config.profile",
			Err: fmt.Errorf("%w: %q (have %s)", errs.ErrUnknownProfile, name, strings.Join(c.Names(), ", ")),
		}
	}

	return p, nil
}

// Names returns the profile names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func builtinProfiles() []Profile {
	return []Profile{
		{
			Name:     ProfileBasic,
			Title:    "Lacks Healthcare vs. In Poverty",
			Padding:  axis.StaticPadding(),
			Width:    960,
			Height:   660,
			Margin:   Margin{Top: 30, Right: 30, Bottom: 60, Left: 60},
			DefaultX: axis.DefaultX,
			DefaultY: axis.DefaultY,
		},
		{
			Name:             ProfileRegression,
			Title:            "Lacks Healthcare vs. In Poverty",
			Padding:          axis.StaticPadding(),
			Width:            960,
			Height:           575,
			Margin:           Margin{Top: 30, Right: 30, Bottom: 60, Left: 60},
			RegressionToggle: true,
			DefaultX:         axis.DefaultX,
			DefaultY:         axis.DefaultY,
		},
		{
			Name:             ProfileInteractive,
			Title:            "State Health Risks",
			Padding:          axis.DefaultPadding(),
			Width:            960,
			Height:           575,
			Margin:           Margin{Top: 30, Right: 30, Bottom: 95, Left: 95},
			AxisSwitching:    true,
			RegressionToggle: true,
			DefaultX:         axis.DefaultX,
			DefaultY:         axis.DefaultY,
		},
	}
}
