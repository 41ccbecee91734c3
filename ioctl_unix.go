//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ifcontrol

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

type ioctlKernel struct{}

func (ioctlKernel) getFlags(fd uintptr, ifr *Ifreq) error {
	return classifyErrno("ioctl SIOCGIFFLAGS", ifr.Name(), ioctl(fd, unix.SIOCGIFFLAGS, ifr))
}

func (ioctlKernel) setFlags(fd uintptr, ifr *Ifreq) error {
	return classifyErrno("ioctl SIOCSIFFLAGS", ifr.Name(), ioctl(fd, unix.SIOCSIFFLAGS, ifr))
}

// ioctl performs a system-level I/O control operation on the raw request.
func ioctl(fd uintptr, request uintptr, ifr *Ifreq) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, request, uintptr(unsafe.Pointer(&ifr.raw))); errno != 0 {
		return errno
	}
	return nil
}
