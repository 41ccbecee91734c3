//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package ifcontrol

type ifreq struct {
	name [16]byte
	flag uint32
}

func (r *ifreq) flags() Flags {
	return Flags(r.flag)
}

func (r *ifreq) setFlags(f Flags) {
	r.flag = uint32(f)
}
