//go:build linux

package ifcontrol

import "golang.org/x/sys/unix"

// ifreq mirrors struct ifreq as used with SIOC[GS]IFFLAGS: the name followed
// by a short in the request union, padded to the size of the union on 64-bit
// kernels.
type ifreq struct {
	name [unix.IFNAMSIZ]byte
	flag uint16
	_    [0x28 - unix.IFNAMSIZ - 2]byte
}

func (r *ifreq) flags() Flags {
	return Flags(r.flag)
}

func (r *ifreq) setFlags(f Flags) {
	r.flag = uint16(f)
}
