package axis

import (
	"fmt"

	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/internal/options"
)

// Default axis mapping of a fresh chart.
const (
	DefaultX = dataset.Poverty
	DefaultY = dataset.Healthcare
)

// Selection is the pair of metrics currently mapped to the axes.
type Selection struct {
	X dataset.Metric
	Y dataset.Metric
}

// DefaultSelection returns poverty against healthcare.
func DefaultSelection() Selection {
	return Selection{X: DefaultX, Y: DefaultY}
}

// Get returns the metric mapped to axis a.
func (s Selection) Get(a Axis) dataset.Metric {
	if a == Y {
		return s.Y
	}

	return s.X
}

func (s Selection) String() string {
	return fmt.Sprintf("%s/%s", s.X, s.Y)
}

// EventKind classifies selector events.
type EventKind uint8

const (
	DimensionChanged  EventKind = 0x1 // DimensionChanged is published after an axis switched metric.
	RegressionToggled EventKind = 0x2 // RegressionToggled is published after the overlay was enabled or disabled.
)

func (k EventKind) String() string {
	switch k {
	case DimensionChanged:
		return "DimensionChanged"
	case RegressionToggled:
		return "RegressionToggled"
	default:
		return "Unknown"
	}
}

// Event describes one effective state change.
type Event struct {
	Kind EventKind
	// Axis is the axis that changed. Zero for RegressionToggled.
	Axis Axis
	// Previous is the selection before the change.
	Previous Selection
	// Selection is the selection after the change.
	Selection         Selection
	RegressionEnabled bool
}

// Listener receives selector events.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Selector is the axis selection state machine.
type Selector struct {
	sel        Selection
	regression bool
	subs       []subscription
	nextID     int
}

// SelectorOption configures a Selector.
type SelectorOption = options.Option[*Selector]

// WithSelection sets the initial axes. Both metrics are validated.
func WithSelection(x, y dataset.Metric) SelectorOption {
	return options.New(func(s *Selector) error {
		if err := Check(X, x); err != nil {
			return err
		}
		if err := Check(Y, y); err != nil {
			return err
		}
		s.sel = Selection{X: x, Y: y}

		return nil
	})
}

// WithRegression sets whether the regression overlay starts enabled.
func WithRegression(enabled bool) SelectorOption {
	return options.NoError(func(s *Selector) {
		s.regression = enabled
	})
}

// NewSelector creates a selector on poverty/healthcare with the regression disabled.
func NewSelector(opts ...SelectorOption) (*Selector, error) {
	s := &Selector{sel: DefaultSelection()}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Selection returns the current axis mapping.
func (s *Selector) Selection() Selection {
	return s.sel
}

// RegressionEnabled reports whether the regression overlay is on.
func (s *Selector) RegressionEnabled() bool {
	return s.regression
}

// SelectX maps m to the X axis.
//
// Returns:
//   - changed: false when m was already selected; nothing is published then
//   - error: *errs.InvalidDimensionError when m is not an X metric; state is unchanged
func (s *Selector) SelectX(m dataset.Metric) (bool, error) {
	return s.selectAxis(X, m)
}

// SelectY maps m to the Y axis. See SelectX.
func (s *Selector) SelectY(m dataset.Metric) (bool, error) {
	return s.selectAxis(Y, m)
}

// Select maps m to axis a.
func (s *Selector) Select(a Axis, m dataset.Metric) (bool, error) {
	return s.selectAxis(a, m)
}

func (s *Selector) selectAxis(a Axis, m dataset.Metric) (bool, error) {
	if err := Check(a, m); err != nil {
		return false, err
	}
	if s.sel.Get(a) == m {
		return false, nil
	}

	prev := s.sel
	if a == X {
		s.sel.X = m
	} else {
		s.sel.Y = m
	}

	s.publish(Event{
		Kind:              DimensionChanged,
		Axis:              a,
		Previous:          prev,
		Selection:         s.sel,
		RegressionEnabled: s.regression,
	})

	return true, nil
}

// SetRegression enables or disables the regression overlay.
// It returns false and publishes nothing when the state is unchanged.
func (s *Selector) SetRegression(enabled bool) bool {
	if s.regression == enabled {
		return false
	}
	s.regression = enabled

	s.publish(Event{
		Kind:              RegressionToggled,
		Previous:          s.sel,
		Selection:         s.sel,
		RegressionEnabled: enabled,
	})

	return true
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it. Calling the returned function more than once is harmless.
func (s *Selector) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Selector) publish(ev Event) {
	// Listeners may unsubscribe while being notified.
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)

	for _, sub := range subs {
		sub.fn(ev)
	}
}
