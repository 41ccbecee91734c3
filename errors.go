package ifcontrol

import "errors"

var (
	// ErrInterfaceNotFound is returned when the kernel reports that no
	// interface carries the requested name.
	ErrInterfaceNotFound = errors.New("interface not found")

	// ErrInvalidName is returned before any syscall when a name does not fit
	// the kernel's fixed-size name field or contains a forbidden byte.
	ErrInvalidName = errors.New("invalid interface name")

	// ErrUnsupported is returned on platforms without the underlying call.
	ErrUnsupported = errors.New("not supported on this platform")
)

// Kind classifies errors returned by this package.
type Kind int

const (
	KindNone Kind = iota
	KindSystemIO
	KindInterfaceNotFound
	KindInvalidName
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSystemIO:
		return "system I/O error"
	case KindInterfaceNotFound:
		return "interface not found"
	case KindInvalidName:
		return "invalid name"
	case KindUnsupported:
		return "unsupported"
	}
	return "unknown"
}

// KindOf maps err onto the package error taxonomy. Any non-nil error that is
// not one of the sentinels is a system I/O error.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInterfaceNotFound):
		return KindInterfaceNotFound
	case errors.Is(err, ErrInvalidName):
		return KindInvalidName
	case errors.Is(err, ErrUnsupported):
		return KindUnsupported
	}
	return KindSystemIO
}
