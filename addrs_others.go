//go:build android || (!linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd)

package ifcontrol

// Android does not let unprivileged processes dump the link table.
func fetchAddresses() ([]InterfaceAddress, error) {
	return nil, ErrUnsupported
}
