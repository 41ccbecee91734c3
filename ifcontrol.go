// Package ifcontrol reads and changes the administrative state of network
// interfaces through an OS control socket and the SIOCGIFFLAGS/SIOCSIFFLAGS
// ioctls, and enumerates the addresses configured on the host.
//
// Flag changes are a read-modify-write against kernel state. Nothing here
// serializes concurrent Up/Down calls on the same interface; use a
// Controller created WithSerializedAccess, or lock externally.
package ifcontrol

import "fmt"

// Handle is a borrowed control descriptor. *ControlSocket and *os.File
// both satisfy it.
type Handle interface {
	Fd() uintptr
}

// Status is the administrative state requested through SetStatus.
type Status int

const (
	StatusUp Status = iota
	StatusDown
)

func (s Status) String() string {
	switch s {
	case StatusUp:
		return "up"
	case StatusDown:
		return "down"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// GetIfreq returns the request record for name with its flags populated by
// the kernel.
func GetIfreq(h Handle, name string) (*Ifreq, error) {
	return getIfreq(sys, h, name)
}

// IsUp reports whether name is both administratively up and running.
func IsUp(h Handle, name string) (bool, error) {
	return isUp(sys, h, name)
}

// Up sets the up and running bits on name. It does not write anything when
// the interface is already up and running.
func Up(h Handle, name string) error {
	_, err := up(sys, h, name)
	return err
}

// Down clears the up and running bits on name. It does not write anything
// unless IsUp reports true, so an interface that is up without carrier is
// left as it is.
func Down(h Handle, name string) error {
	_, err := down(sys, h, name)
	return err
}

// SetStatus toggles the interface between Up and Down states.
func SetStatus(h Handle, name string, status Status) error {
	_, err := setStatus(sys, h, name, status)
	return err
}

func getIfreq(k kernel, h Handle, name string) (*Ifreq, error) {
	ifr, err := NewIfreq(name)
	if err != nil {
		return nil, err
	}

	if err := k.getFlags(h.Fd(), ifr); err != nil {
		return nil, err
	}

	return ifr, nil
}

func isUp(k kernel, h Handle, name string) (bool, error) {
	ifr, err := getIfreq(k, h, name)
	if err != nil {
		return false, err
	}

	return ifr.Flags().Has(FlagUp | FlagRunning), nil
}

// up reports whether a write was issued.
func up(k kernel, h Handle, name string) (bool, error) {
	ok, err := isUp(k, h, name)
	if err != nil || ok {
		return false, err
	}

	ifr, err := getIfreq(k, h, name)
	if err != nil {
		return false, err
	}

	ifr.InsertFlags(FlagUp | FlagRunning)

	return true, k.setFlags(h.Fd(), ifr)
}

// down reports whether a write was issued.
func down(k kernel, h Handle, name string) (bool, error) {
	ok, err := isUp(k, h, name)
	if err != nil || !ok {
		return false, err
	}

	ifr, err := getIfreq(k, h, name)
	if err != nil {
		return false, err
	}

	ifr.RemoveFlags(FlagUp | FlagRunning)

	return true, k.setFlags(h.Fd(), ifr)
}

func setStatus(k kernel, h Handle, name string, status Status) (bool, error) {
	switch status {
	case StatusUp:
		return up(k, h, name)
	case StatusDown:
		return down(k, h, name)
	}

	return false, fmt.Errorf("unknown interface status %v", status)
}
