package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/arloliu/healthplot/dataset"
)

type keyMap struct {
	Poverty    key.Binding
	Age        key.Binding
	Income     key.Binding
	Healthcare key.Binding
	Smokes     key.Binding
	Obesity    key.Binding
	Regression key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Poverty:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "x: poverty")),
		Age:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "x: age")),
		Income:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "x: income")),
		Healthcare: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "y: healthcare")),
		Smokes:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "y: smokes")),
		Obesity:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "y: obesity")),
		Regression: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regression")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// lock disables the bindings the profile does not support.
func (k *keyMap) lock(axisSwitching, regressionToggle bool) {
	for _, b := range []*key.Binding{&k.Poverty, &k.Age, &k.Income, &k.Healthcare, &k.Smokes, &k.Obesity} {
		b.SetEnabled(axisSwitching)
	}
	k.Regression.SetEnabled(regressionToggle)
}

func (k keyMap) xBindings() map[dataset.Metric]key.Binding {
	return map[dataset.Metric]key.Binding{
		dataset.Poverty: k.Poverty,
		dataset.Age:     k.Age,
		dataset.Income:  k.Income,
	}
}

func (k keyMap) yBindings() map[dataset.Metric]key.Binding {
	return map[dataset.Metric]key.Binding{
		dataset.Healthcare: k.Healthcare,
		dataset.Smokes:     k.Smokes,
		dataset.Obesity:    k.Obesity,
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Poverty, k.Age, k.Income, k.Healthcare, k.Smokes, k.Obesity, k.Regression, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Poverty, k.Age, k.Income},
		{k.Healthcare, k.Smokes, k.Obesity},
		{k.Regression, k.Help, k.Quit},
	}
}
