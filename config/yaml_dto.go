package config

type YAMLConfig struct {
	DefaultProfile string                 `yaml:"default_profile"`
	Profiles       map[string]YAMLProfile `yaml:"profiles"`
}

type YAMLProfile struct {
	Title            *string      `yaml:"title"`
	Padding          *YAMLPadding `yaml:"padding"`
	Width            *int         `yaml:"width"`
	Height           *int         `yaml:"height"`
	Margin           *YAMLMargin  `yaml:"margin"`
	AxisSwitching    *bool        `yaml:"axis_switching"`
	RegressionToggle *bool        `yaml:"regression_toggle"`
	DefaultX         *string      `yaml:"default_x"`
	DefaultY         *string      `yaml:"default_y"`
}

type YAMLPadding struct {
	XMin *float64 `yaml:"x_min"`
	XMax *float64 `yaml:"x_max"`
	YMin *float64 `yaml:"y_min"`
	YMax *float64 `yaml:"y_max"`
}

type YAMLMargin struct {
	Top    *int `yaml:"top"`
	Right  *int `yaml:"right"`
	Bottom *int `yaml:"bottom"`
	Left   *int `yaml:"left"`
}
