package ifcontrol

import (
	"bytes"
	"fmt"
)

// An Ifreq is a fixed-layout interface request record: the interface name
// plus the flags word of the request union. Create one with NewIfreq.
type Ifreq struct {
	raw ifreq
}

// NewIfreq returns an empty request record addressed to name. Names longer
// than IFNAMSIZ-1 bytes, empty names and names with NUL, '/' or whitespace
// are rejected with ErrInvalidName.
func NewIfreq(name string) (*Ifreq, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	var ifr Ifreq
	copy(ifr.raw.name[:], name)

	return &ifr, nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case len(name) >= len(ifreq{}.name):
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidName, name, len(ifreq{}.name)-1)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	for i := 0; i < len(name); i++ {
		switch c := name[i]; c {
		case 0, '/', ' ', '\t', '\n', '\v', '\f', '\r':
			return fmt.Errorf("%w: %q contains byte 0x%02x", ErrInvalidName, name, c)
		}
	}

	return nil
}

// Name returns the interface name the record is addressed to.
func (ifr *Ifreq) Name() string {
	n := bytes.IndexByte(ifr.raw.name[:], 0)
	if n < 0 {
		n = len(ifr.raw.name)
	}
	return string(ifr.raw.name[:n])
}

// Flags returns the flags word.
func (ifr *Ifreq) Flags() Flags {
	return ifr.raw.flags()
}

// SetFlags replaces the flags word.
func (ifr *Ifreq) SetFlags(f Flags) {
	ifr.raw.setFlags(f)
}

// InsertFlags sets f, keeping every other bit.
func (ifr *Ifreq) InsertFlags(f Flags) {
	ifr.raw.setFlags(ifr.raw.flags() | f)
}

// RemoveFlags clears f, keeping every other bit.
func (ifr *Ifreq) RemoveFlags(f Flags) {
	ifr.raw.setFlags(ifr.raw.flags() &^ f)
}
