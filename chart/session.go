package chart

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/healthplot/axis"
	"github.com/arloliu/healthplot/config"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
	"github.com/arloliu/healthplot/internal/logger"
	"github.com/arloliu/healthplot/internal/options"
	"github.com/arloliu/healthplot/regression"
)

type sessionConfig struct {
	x, y       dataset.Metric
	regression bool
	logger     *slog.Logger
}

// SessionOption configures NewSession.
type SessionOption = options.Option[*sessionConfig]

// WithSelection overrides the profile's default axes.
func WithSelection(x, y dataset.Metric) SessionOption {
	return options.NoError(func(c *sessionConfig) {
		c.x, c.y = x, y
	})
}

// WithRegression starts the session with the overlay enabled or disabled.
func WithRegression(enabled bool) SessionOption {
	return options.NoError(func(c *sessionConfig) {
		c.regression = enabled
	})
}

// WithLogger sets the session logger. Defaults to logger.L().
func WithLogger(l *slog.Logger) SessionOption {
	return options.New(func(c *sessionConfig) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = l

		return nil
	})
}

// Session is the state of one chart: dataset, selection, ranges and fit.
type Session struct {
	ds          *dataset.Dataset
	profile     config.Profile
	selector    *axis.Selector
	unsubscribe func()
	log         *slog.Logger

	xRange, yRange axis.Range
	fit            *regression.Result
	fitErr         error
	// err holds a failure raised inside the selector callback.
	err error
}

// NewSession creates a session over ds using profile.
//
// Returns errs.ErrEmptyDataset for an empty dataset, *errs.InvalidDimensionError
// for axes outside their sets, errs.ErrAxisLocked when the profile has fixed axes
// and the selection differs from its defaults, and errs.ErrRegressionUnavailable
// when the overlay is requested on a profile without the toggle.
func NewSession(ds *dataset.Dataset, profile config.Profile, opts ...SessionOption) (*Session, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, errs.ErrEmptyDataset
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	cfg := &sessionConfig{x: profile.DefaultX, y: profile.DefaultY, logger: logger.L()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := axis.Check(axis.X, cfg.x); err != nil {
		return nil, err
	}
	if err := axis.Check(axis.Y, cfg.y); err != nil {
		return nil, err
	}
	if !profile.AxisSwitching && (cfg.x != profile.DefaultX || cfg.y != profile.DefaultY) {
		return nil, fmt.Errorf("%w: profile %s shows %s/%s only",
			errs.ErrAxisLocked, profile.Name, profile.DefaultX, profile.DefaultY)
	}
	if cfg.regression && !profile.RegressionToggle {
		return nil, fmt.Errorf("%w: profile %s", errs.ErrRegressionUnavailable, profile.Name)
	}

	sel, err := axis.NewSelector(axis.WithSelection(cfg.x, cfg.y), axis.WithRegression(cfg.regression))
	if err != nil {
		return nil, err
	}

	s := &Session{
		ds:       ds,
		profile:  profile,
		selector: sel,
		log:      cfg.logger.With("profile", profile.Name),
	}
	if err := s.refresh(sel.Selection(), sel.RegressionEnabled()); err != nil {
		return nil, err
	}
	s.unsubscribe = sel.Subscribe(s.onEvent)

	return s, nil
}

// Close detaches the session from its selector.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Subscribe forwards selector events to fn after the session has refreshed.
func (s *Session) Subscribe(fn axis.Listener) (unsubscribe func()) {
	return s.selector.Subscribe(fn)
}

// Profile returns the active profile.
func (s *Session) Profile() config.Profile {
	return s.profile
}

// Dataset returns the session's dataset.
func (s *Session) Dataset() *dataset.Dataset {
	return s.ds
}

// Selection returns the current axis mapping.
func (s *Session) Selection() axis.Selection {
	return s.selector.Selection()
}

// RegressionEnabled reports whether the overlay is on.
func (s *Session) RegressionEnabled() bool {
	return s.selector.RegressionEnabled()
}

// Ranges returns the cached padded ranges of the current selection.
func (s *Session) Ranges() (x, y axis.Range) {
	return s.xRange, s.yRange
}

// Regression returns the current fit.
// Both values are nil when the overlay is disabled; a degenerate fit returns
// a nil result and the *errs.DegenerateFitError.
func (s *Session) Regression() (*regression.Result, error) {
	return s.fit, s.fitErr
}

// Tooltip returns the hover text of the state with the given abbreviation
// under the current selection. Unknown abbreviations return errs.ErrUnknownState.
func (s *Session) Tooltip(abbr string) (string, error) {
	o, ok := s.ds.Lookup(abbr)
	if !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownState, abbr)
	}

	return Tooltip(o, s.Selection()), nil
}

// SelectX maps m to the X axis. See axis.Selector.SelectX.
// Changing the metric on a profile without axis switching returns errs.ErrAxisLocked.
func (s *Session) SelectX(m dataset.Metric) (bool, error) {
	return s.selectAxis(axis.X, m)
}

// SelectY maps m to the Y axis. See SelectX.
func (s *Session) SelectY(m dataset.Metric) (bool, error) {
	return s.selectAxis(axis.Y, m)
}

func (s *Session) selectAxis(a axis.Axis, m dataset.Metric) (bool, error) {
	if err := axis.Check(a, m); err != nil {
		return false, err
	}
	if s.selector.Selection().Get(a) == m {
		return false, nil
	}
	if !s.profile.AxisSwitching {
		return false, fmt.Errorf("%w: profile %s", errs.ErrAxisLocked, s.profile.Name)
	}

	changed, err := s.selector.Select(a, m)
	if err != nil {
		return false, err
	}

	return changed, s.takeErr()
}

// SetRegression enables or disables the overlay. It returns whether the state changed.
func (s *Session) SetRegression(enabled bool) (bool, error) {
	if enabled && !s.profile.RegressionToggle {
		return false, fmt.Errorf("%w: profile %s", errs.ErrRegressionUnavailable, s.profile.Name)
	}

	changed := s.selector.SetRegression(enabled)

	return changed, s.takeErr()
}

// ToggleRegression flips the overlay and returns the new state.
func (s *Session) ToggleRegression() (bool, error) {
	want := !s.selector.RegressionEnabled()
	if _, err := s.SetRegression(want); err != nil {
		return s.selector.RegressionEnabled(), err
	}

	return want, nil
}

// Frame returns a snapshot of the current state.
func (s *Session) Frame() *Frame {
	sel := s.selector.Selection()

	points := make([]Point, s.ds.Len())
	for i := range points {
		o := s.ds.At(i)
		points[i] = Point{
			Abbr:    o.Abbr,
			State:   o.State,
			X:       o.Value(sel.X),
			Y:       o.Value(sel.Y),
			Tooltip: Tooltip(o, sel),
		}
	}

	f := &Frame{
		Profile:           s.profile.Name,
		Title:             s.profile.Title,
		Width:             s.profile.Width,
		Height:            s.profile.Height,
		Margin:            s.profile.Margin,
		Selection:         sel,
		XLabel:            axis.Label(sel.X),
		YLabel:            axis.Label(sel.Y),
		XRange:            s.xRange,
		YRange:            s.yRange,
		Points:            points,
		RegressionEnabled: s.selector.RegressionEnabled(),
	}
	switch {
	case s.fit != nil:
		f.Regression = newOverlay(s.fit)
	case errors.Is(s.fitErr, errs.ErrDegenerateFit):
		f.FitFailure = FitFailureMessage
	}

	return f
}

// Render draws the current frame with r.
func (s *Session) Render(w io.Writer, r Renderer) error {
	if r == nil {
		return errors.New("renderer must not be nil")
	}

	f := s.Frame()
	if err := r.Render(w, f); err != nil {
		return err
	}
	s.log.Debug("render.done", "selection", f.Selection.String(), "regression", f.Regression != nil)

	return nil
}

func (s *Session) onEvent(ev axis.Event) {
	switch ev.Kind {
	case axis.DimensionChanged:
		s.log.Info("axis.changed", "axis", ev.Axis.String(),
			"from", ev.Previous.Get(ev.Axis).String(), "to", ev.Selection.Get(ev.Axis).String())
	case axis.RegressionToggled:
		s.log.Info("regression.toggled", "enabled", ev.RegressionEnabled)
	}

	if err := s.refresh(ev.Selection, ev.RegressionEnabled); err != nil {
		s.err = err
	}
}

// refresh recomputes ranges and the fit for sel. The previous fit is always dropped.
func (s *Session) refresh(sel axis.Selection, enabled bool) error {
	s.fit, s.fitErr = nil, nil

	x, y, err := s.profile.Padding.Ranges(s.ds, sel)
	if err != nil {
		return err
	}
	s.xRange, s.yRange = x, y

	if !enabled {
		return nil
	}

	res, err := regression.Compute(s.ds, sel.X, sel.Y)
	switch {
	case errors.Is(err, errs.ErrDegenerateFit):
		s.fitErr = err
		s.log.Warn("regression.degenerate", "x", sel.X.String(), "y", sel.Y.String(), "error", err)
	case err != nil:
		return err
	default:
		s.fit = res
		s.log.Debug("regression.computed", "x", sel.X.String(), "y", sel.Y.String(),
			"slope", res.Slope, "intercept", res.Intercept, "r2", res.RSquared)
	}

	return nil
}

func (s *Session) takeErr() error {
	err := s.err
	s.err = nil

	return err
}
