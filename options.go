package ifcontrol

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Option configures a Controller.
type Option func(c *Controller) error

// WithHandle makes the Controller borrow h instead of opening its own
// control socket. Close leaves h open.
func WithHandle(h Handle) Option {
	return func(c *Controller) error {
		if h == nil {
			return errors.New("handle cannot be nil")
		}

		c.handle = h
		return nil
	}
}

// WithNamespacePath opens the Controller's socket inside the network
// namespace bound at path. Linux only.
func WithNamespacePath(path string) Option {
	return func(c *Controller) error {
		if path == "" {
			return errors.New("namespace path cannot be empty")
		}

		c.nsPath = path
		return nil
	}
}

// WithSerializedAccess serializes Up, Down and SetStatus per interface name
// within this Controller.
func WithSerializedAccess() Option {
	return func(c *Controller) error {
		c.serialized = true
		return nil
	}
}

// WithLogger sets the logger used for flag transitions.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}

		c.log = log
		return nil
	}
}
