//go:build !linux

package ifcontrol

func openControlSocket(nsPath string) (*ControlSocket, error) {
	if nsPath != "" {
		return nil, ErrUnsupported
	}
	return NewControlSocket()
}
