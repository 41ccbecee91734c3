//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package ifcontrol

import (
	"fmt"
	"net"

	"golang.org/x/net/route"
	"golang.org/x/sys/unix"
)

func fetchAddresses() ([]InterfaceAddress, error) {
	rib, err := route.FetchRIB(unix.AF_UNSPEC, route.RIBTypeInterface, 0)
	if err != nil {
		return nil, err
	}

	msgs, err := route.ParseRIB(route.RIBTypeInterface, rib)
	if err != nil {
		return nil, fmt.Errorf("failed to parse interface table: %w", err)
	}

	var entries []InterfaceAddress
	links := make(map[int]InterfaceAddress)

	for _, msg := range msgs {
		switch m := msg.(type) {
		case *route.InterfaceMessage:
			link := InterfaceAddress{
				Name:   m.Name,
				Index:  m.Index,
				Flags:  Flags(m.Flags),
				Family: unix.AF_LINK,
			}
			if la, ok := ribAddr(m.Addrs, unix.RTAX_IFP).(*route.LinkAddr); ok && len(la.Addr) > 0 {
				link.HardwareAddr = net.HardwareAddr(la.Addr)
			}

			links[m.Index] = link
			entries = append(entries, link)

		case *route.InterfaceAddrMessage:
			ip, family := ribIP(ribAddr(m.Addrs, unix.RTAX_IFA))
			if ip == nil {
				continue
			}

			link := links[m.Index]
			entry := InterfaceAddress{
				Name:   link.Name,
				Index:  m.Index,
				Flags:  link.Flags,
				Family: family,
				IP:     ip,
			}

			if mask, _ := ribIP(ribAddr(m.Addrs, unix.RTAX_NETMASK)); mask != nil {
				if family == unix.AF_INET {
					mask = mask.To4()
				}
				entry.Netmask = net.IPMask(mask)
			}

			// RTAX_BRD holds the peer address on point-to-point links.
			if brd, _ := ribIP(ribAddr(m.Addrs, unix.RTAX_BRD)); brd != nil {
				if link.Flags&FlagPointToPoint != 0 {
					entry.Destination = brd
				} else {
					entry.Broadcast = brd
				}
			}

			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func ribAddr(addrs []route.Addr, i int) route.Addr {
	if i < len(addrs) {
		return addrs[i]
	}
	return nil
}

func ribIP(a route.Addr) (net.IP, int) {
	switch a := a.(type) {
	case *route.Inet4Addr:
		return net.IPv4(a.IP[0], a.IP[1], a.IP[2], a.IP[3]), unix.AF_INET
	case *route.Inet6Addr:
		ip := make(net.IP, net.IPv6len)
		copy(ip, a.IP[:])
		return ip, unix.AF_INET6
	}
	return nil, 0
}
