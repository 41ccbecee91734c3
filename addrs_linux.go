//go:build linux && !android

package ifcontrol

import (
	"os"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

func fetchAddresses() ([]InterfaceAddress, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, os.NewSyscallError("netlink", err)
	}

	addrs, err := netlink.AddrList(nil, netlink.FAMILY_ALL)
	if err != nil {
		return nil, os.NewSyscallError("netlink", err)
	}

	entries := make([]InterfaceAddress, 0, len(links)+len(addrs))
	byIndex := make(map[int]*netlink.LinkAttrs, len(links))

	for _, link := range links {
		attrs := link.Attrs()
		byIndex[attrs.Index] = attrs

		entries = append(entries, InterfaceAddress{
			Name:         attrs.Name,
			Index:        attrs.Index,
			Flags:        Flags(attrs.RawFlags),
			Family:       unix.AF_PACKET,
			HardwareAddr: attrs.HardwareAddr,
		})
	}

	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}

		entry := InterfaceAddress{
			Index:     addr.LinkIndex,
			IP:        addr.IP,
			Netmask:   addr.Mask,
			Broadcast: addr.Broadcast,
			Family:    unix.AF_INET6,
		}

		if addr.IP.To4() != nil {
			entry.Family = unix.AF_INET
		}

		if attrs, ok := byIndex[addr.LinkIndex]; ok {
			entry.Name = attrs.Name
			entry.Flags = Flags(attrs.RawFlags)
		}

		// IPv4 aliases carry their own label, e.g. eth0:1.
		if addr.Label != "" {
			entry.Name = addr.Label
		}

		if addr.Peer != nil && !addr.Peer.IP.Equal(addr.IP) {
			entry.Destination = addr.Peer.IP
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
