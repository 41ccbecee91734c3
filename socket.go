package ifcontrol

import "sync"

// ControlSocket is an AF_INET datagram socket used only as a handle for
// interface control requests. It never sends or receives.
type ControlSocket struct {
	fd        int
	closeOnce sync.Once
	closeErr  error
}

// Fd returns the raw descriptor.
func (s *ControlSocket) Fd() uintptr {
	return uintptr(s.fd)
}

// Close releases the descriptor. Further calls return the first result.
func (s *ControlSocket) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = closeSocket(s.fd)
	})
	return s.closeErr
}

// WithControlSocket opens a control socket, passes it to fn and closes it on
// every exit path. A close error is reported only when fn succeeded.
func WithControlSocket(fn func(*ControlSocket) error) (err error) {
	s, err := NewControlSocket()
	if err != nil {
		return err
	}

	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(s)
}
