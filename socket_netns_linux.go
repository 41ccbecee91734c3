//go:build linux

package ifcontrol

import (
	"fmt"
	"os"
	"runtime"

	"github.com/vishvananda/netns"
)

// NewControlSocketAt opens a control socket inside the network namespace ns.
// The socket keeps addressing interfaces of that namespace after the calling
// thread switches back.
func NewControlSocketAt(ns netns.NsHandle) (*ControlSocket, error) {
	runtime.LockOSThread()

	orig, err := netns.Get()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, os.NewSyscallError("setns", err)
	}
	defer orig.Close()

	if err := netns.Set(ns); err != nil {
		runtime.UnlockOSThread()
		return nil, os.NewSyscallError("setns", err)
	}

	s, serr := NewControlSocket()

	if err := netns.Set(orig); err != nil {
		// The thread is stuck in ns; keep it locked so it exits with the goroutine.
		if s != nil {
			s.Close()
		}
		return nil, fmt.Errorf("failed to restore network namespace: %w", os.NewSyscallError("setns", err))
	}
	runtime.UnlockOSThread()

	return s, serr
}

// NewControlSocketAtPath opens a control socket inside the namespace bound at
// path, for example /var/run/netns/blue.
func NewControlSocketAtPath(path string) (*ControlSocket, error) {
	ns, err := netns.GetFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open network namespace %s: %w", path, err)
	}
	defer ns.Close()

	return NewControlSocketAt(ns)
}

func openControlSocket(nsPath string) (*ControlSocket, error) {
	if nsPath == "" {
		return NewControlSocket()
	}
	return NewControlSocketAtPath(nsPath)
}
