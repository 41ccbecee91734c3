//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ifcontrol

import (
	"os"

	"golang.org/x/sys/unix"
)

// NewControlSocket opens a new control socket. The caller owns it and must
// Close it.
func NewControlSocket() (*ControlSocket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, 0)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}

	unix.CloseOnExec(fd)

	return &ControlSocket{fd: fd}, nil
}

func closeSocket(fd int) error {
	if err := unix.Close(fd); err != nil {
		return os.NewSyscallError("close", err)
	}
	return nil
}
