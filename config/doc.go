// Package config holds the chart profiles and loads them from YAML.
//
// A profile bundles the padding factors of the axis ranges, the chart geometry
// and the capabilities of the interactive surface (axis switching and the
// regression toggle). Three profiles are built in:
//
//	basic        y_min 0.6,  fixed axes, no regression toggle
//	regression   y_min 0.6,  fixed axes, regression toggle
//	interactive  y_min 0.75, axis switching, regression toggle
//
// A YAML file may override any field of a built-in profile or add new ones.
// Fields left out of a file profile inherit from the built-in profile of the
// same name, or from "interactive" for new names.
package config
