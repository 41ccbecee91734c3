//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package ifcontrol

import "golang.org/x/sys/unix"

const (
	FlagUp           Flags = unix.IFF_UP
	FlagBroadcast    Flags = unix.IFF_BROADCAST
	FlagLoopback     Flags = unix.IFF_LOOPBACK
	FlagPointToPoint Flags = unix.IFF_POINTOPOINT
	FlagRunning      Flags = unix.IFF_RUNNING
	FlagPromisc      Flags = unix.IFF_PROMISC
	FlagMulticast    Flags = unix.IFF_MULTICAST
)
