//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package ifcontrol

// NewControlSocket is a stub for unsupported platforms.
func NewControlSocket() (*ControlSocket, error) {
	return nil, ErrUnsupported
}

func closeSocket(int) error {
	return nil
}
