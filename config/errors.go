package config

import "fmt"

// Error wraps a configuration failure with the operation and file involved.
type Error struct {
	Op   string
	Path string // Optional: config file path
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := e.Op
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}
