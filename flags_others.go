//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package ifcontrol

// Linux values, so that Flags still formats on platforms without ioctl
// support.
const (
	FlagUp           Flags = 0x1
	FlagBroadcast    Flags = 0x2
	FlagLoopback     Flags = 0x8
	FlagPointToPoint Flags = 0x10
	FlagRunning      Flags = 0x40
	FlagPromisc      Flags = 0x100
	FlagMulticast    Flags = 0x1000
)
