package ifcontrol

import (
	"iter"
	"net"
)

// InterfaceAddress is one entry of the host address table: a link-layer
// entry per interface, then one entry per configured address.
type InterfaceAddress struct {
	Name   string
	Index  int
	Flags  Flags
	Family int

	IP           net.IP
	Netmask      net.IPMask
	Broadcast    net.IP
	Destination  net.IP
	HardwareAddr net.HardwareAddr
}

// AddressIterator walks a snapshot of the host address table once.
type AddressIterator struct {
	entries []InterfaceAddress
	cur     InterfaceAddress
	pos     int
}

// Next advances to the next entry. It returns false once the table is
// exhausted; the iterator cannot be rewound.
func (it *AddressIterator) Next() bool {
	if it.pos >= len(it.entries) {
		it.entries = nil
		return false
	}

	it.cur = it.entries[it.pos]
	it.entries[it.pos] = InterfaceAddress{}
	it.pos++

	return true
}

// Address returns the entry selected by the last call to Next.
func (it *AddressIterator) Address() InterfaceAddress {
	return it.cur
}

// All yields the remaining entries, consuming the iterator.
func (it *AddressIterator) All() iter.Seq[InterfaceAddress] {
	return func(yield func(InterfaceAddress) bool) {
		for it.Next() {
			if !yield(it.cur) {
				return
			}
		}
	}
}

// GetAllAddresses fetches the address table of every interface on the host.
func GetAllAddresses() (*AddressIterator, error) {
	entries, err := fetchAddresses()
	if err != nil {
		return nil, err
	}

	return &AddressIterator{entries: entries}, nil
}
