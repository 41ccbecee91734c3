package ifcontrol

// kernel is the syscall boundary for flag requests. Both methods return
// errors already classified by the package taxonomy.
type kernel interface {
	getFlags(fd uintptr, ifr *Ifreq) error
	setFlags(fd uintptr, ifr *Ifreq) error
}

var sys kernel = ioctlKernel{}
