package ifcontrol

import (
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Controller bundles a control handle with optional per-name locking and
// logging. The zero value is not usable; create one with NewController.
type Controller struct {
	handle Handle
	owned  *ControlSocket
	nsPath string

	serialized bool
	locks      sync.Map // interface name -> *sync.Mutex

	log logrus.FieldLogger
	k   kernel
}

// NewController applies opts and, unless WithHandle was given, opens a
// control socket owned by the Controller.
func NewController(opts ...Option) (*Controller, error) {
	c := &Controller{
		log: discardLogger(),
		k:   sys,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.handle != nil && c.nsPath != "" {
		return nil, errors.New("WithHandle and WithNamespacePath are mutually exclusive")
	}

	if c.handle == nil {
		s, err := openControlSocket(c.nsPath)
		if err != nil {
			return nil, err
		}

		c.owned = s
		c.handle = s
	}

	return c, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Close releases the control socket if the Controller opened it.
func (c *Controller) Close() error {
	if c.owned == nil {
		return nil
	}
	return c.owned.Close()
}

// Handle returns the control handle in use.
func (c *Controller) Handle() Handle {
	return c.handle
}

// Ifreq returns the populated request record for name.
func (c *Controller) Ifreq(name string) (*Ifreq, error) {
	return getIfreq(c.k, c.handle, name)
}

// Flags returns the current flags of name.
func (c *Controller) Flags(name string) (Flags, error) {
	ifr, err := getIfreq(c.k, c.handle, name)
	if err != nil {
		return 0, err
	}
	return ifr.Flags(), nil
}

// IsUp reports whether name is both administratively up and running.
func (c *Controller) IsUp(name string) (bool, error) {
	return isUp(c.k, c.handle, name)
}

// Up brings name up.
func (c *Controller) Up(name string) error {
	return c.SetStatus(name, StatusUp)
}

// Down brings name down.
func (c *Controller) Down(name string) error {
	return c.SetStatus(name, StatusDown)
}

// SetStatus toggles name between Up and Down states.
func (c *Controller) SetStatus(name string, status Status) error {
	if c.serialized {
		mu := c.lock(name)
		mu.Lock()
		defer mu.Unlock()
	}

	log := c.log.WithFields(logrus.Fields{"iface": name, "status": status})

	changed, err := setStatus(c.k, c.handle, name, status)
	switch {
	case err != nil:
		log.WithError(err).Debug("failed to change interface state")
		return err
	case !changed:
		log.Debug("interface already in requested state")
	default:
		log.Debug("interface state changed")
	}

	return nil
}

func (c *Controller) lock(name string) *sync.Mutex {
	mu, _ := c.locks.LoadOrStore(name, new(sync.Mutex))
	return mu.(*sync.Mutex)
}
