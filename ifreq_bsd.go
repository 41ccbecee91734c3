//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package ifcontrol

import "golang.org/x/sys/unix"

// ifreq mirrors the BSD struct ifreq. The union starts with ifru_flags[2];
// FreeBSD keeps the high flag bits in the second short, the others leave
// it zero.
type ifreq struct {
	name      [unix.IFNAMSIZ]byte
	flag      int16
	flagsHigh int16
	_         [0x20 - unix.IFNAMSIZ - 4]byte
}

func (r *ifreq) flags() Flags {
	return Flags(uint16(r.flag)) | Flags(uint16(r.flagsHigh))<<16
}

func (r *ifreq) setFlags(f Flags) {
	r.flag = int16(uint16(f))
	r.flagsHigh = int16(uint16(f >> 16))
}
