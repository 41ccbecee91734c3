//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ifcontrol

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// classifyErrno turns a raw ioctl errno into a package error. Linux answers
// an unknown name with ENODEV, the BSDs with ENXIO.
func classifyErrno(op, name string, errno error) error {
	if errno == nil {
		return nil
	}

	if errors.Is(errno, unix.ENODEV) || errors.Is(errno, unix.ENXIO) {
		return fmt.Errorf("%s %s: %w: %w", op, name, ErrInterfaceNotFound, errno)
	}

	return fmt.Errorf("%s: %w", name, os.NewSyscallError(op, errno))
}
