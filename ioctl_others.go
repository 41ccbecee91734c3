//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package ifcontrol

type ioctlKernel struct{}

func (ioctlKernel) getFlags(uintptr, *Ifreq) error {
	return ErrUnsupported
}

func (ioctlKernel) setFlags(uintptr, *Ifreq) error {
	return ErrUnsupported
}
