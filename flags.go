package ifcontrol

import (
	"fmt"
	"strings"
)

// Flags is the per-interface flag bitset as reported by SIOCGIFFLAGS.
type Flags uint32

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagUp, "up"},
	{FlagBroadcast, "broadcast"},
	{FlagLoopback, "loopback"},
	{FlagPointToPoint, "pointtopoint"},
	{FlagRunning, "running"},
	{FlagPromisc, "promisc"},
	{FlagMulticast, "multicast"},
}

// Has reports whether every bit in f is set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

func (fl Flags) String() string {
	if fl == 0 {
		return "0"
	}

	var parts []string
	rest := fl
	for _, n := range flagNames {
		if fl&n.flag != 0 {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}

	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}

	return strings.Join(parts, "|")
}
