package ifcontrol

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
)

type fakeHandle uintptr

func (h fakeHandle) Fd() uintptr { return uintptr(h) }

func withKernel(t *testing.T, k kernel) {
	t.Helper()

	prev := sys
	sys = k
	t.Cleanup(func() { sys = prev })
}

type mockKernel struct {
	mock.Mock
}

func (m *mockKernel) getFlags(fd uintptr, ifr *Ifreq) error {
	args := m.Called(fd, ifr.Name())
	if f, ok := args.Get(0).(Flags); ok {
		ifr.SetFlags(f)
	}
	return args.Error(1)
}

func (m *mockKernel) setFlags(fd uintptr, ifr *Ifreq) error {
	return m.Called(fd, ifr.Name(), ifr.Flags()).Error(0)
}

// fakeKernel keeps per-interface flags in memory and counts writes whose
// read side was overtaken by another write.
type fakeKernel struct {
	mu        sync.Mutex
	flags     map[string]Flags
	version   map[string]int
	seen      map[*Ifreq]int
	writes    int
	conflicts int
}

func newFakeKernel(ifaces map[string]Flags) *fakeKernel {
	return &fakeKernel{
		flags:   ifaces,
		version: make(map[string]int),
		seen:    make(map[*Ifreq]int),
	}
}

func (f *fakeKernel) getFlags(_ uintptr, ifr *Ifreq) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fl, ok := f.flags[ifr.Name()]
	if !ok {
		return fmt.Errorf("ioctl %s: %w", ifr.Name(), ErrInterfaceNotFound)
	}

	ifr.SetFlags(fl)
	f.seen[ifr] = f.version[ifr.Name()]

	return nil
}

func (f *fakeKernel) setFlags(_ uintptr, ifr *Ifreq) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	name := ifr.Name()
	if f.seen[ifr] != f.version[name] {
		f.conflicts++
	}

	f.flags[name] = ifr.Flags()
	f.version[name]++
	f.writes++

	return nil
}
