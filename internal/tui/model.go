package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arloliu/healthplot/axis"
	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/internal/logger"
	"github.com/arloliu/healthplot/render/termchart"
)

// chrome is the number of rows used around the chart: title, captions,
// regression note, status line, help and the card border.
const chrome = 9

type model struct {
	theme    Theme
	keys     keyMap
	help     help.Model
	session  *chart.Session
	renderer *termchart.Renderer
	log      *slog.Logger

	width, height int
	status        string
	err           error
}

// Run starts the interactive chart for s and blocks until the user quits.
func Run(s *chart.Session) error {
	m, err := newModel(s)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(s *chart.Session) (model, error) {
	r, err := termchart.New()
	if err != nil {
		return model{}, err
	}

	keys := defaultKeyMap()
	prof := s.Profile()
	keys.lock(prof.AxisSwitching, prof.RegressionToggle)

	return model{
		theme:    DefaultTheme(),
		keys:     keys,
		help:     help.New(),
		session:  s,
		renderer: r,
		log:      logger.L().With("component", "tui"),
		status:   "profile " + prof.Name,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w := max(msg.Width-4, termchart.MinWidth)
		h := max(msg.Height-chrome, termchart.MinHeight)
		if r, err := termchart.New(termchart.WithSize(w, h)); err == nil {
			m.renderer = r
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Regression):
			on, err := m.session.ToggleRegression()
			m.report(err, fmt.Sprintf("regression %s", onOff(on)))
			return m, nil
		}

		for metric, b := range m.keys.xBindings() {
			if key.Matches(msg, b) {
				m.selectAxis(axis.X, metric)
				return m, nil
			}
		}
		for metric, b := range m.keys.yBindings() {
			if key.Matches(msg, b) {
				m.selectAxis(axis.Y, metric)
				return m, nil
			}
		}
	}

	return m, nil
}

func (m *model) selectAxis(a axis.Axis, metric dataset.Metric) {
	var (
		changed bool
		err     error
	)
	if a == axis.X {
		changed, err = m.session.SelectX(metric)
	} else {
		changed, err = m.session.SelectY(metric)
	}

	if !changed && err == nil {
		m.report(nil, fmt.Sprintf("%s already on %s", metric, a))
		return
	}
	m.report(err, fmt.Sprintf("%s: %s", a, axis.Label(metric)))
}

func (m *model) report(err error, ok string) {
	m.err = err
	if err != nil {
		m.log.Warn("tui.action_failed", "error", err)
		m.status = ""
		return
	}
	m.status = ok
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.renderer.View(m.session.Frame()))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(m.theme.Error.Render(m.err.Error()))
	} else {
		b.WriteString(m.theme.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.theme.Card.Render(b.String())
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
