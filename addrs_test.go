package ifcontrol

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressIterator_SinglePass(t *testing.T) {
	it := &AddressIterator{entries: []InterfaceAddress{
		{Name: "lo", Index: 1},
		{Name: "lo", Index: 1, IP: net.IPv4(127, 0, 0, 1)},
		{Name: "eth0", Index: 2},
	}}

	var names []string
	for it.Next() {
		names = append(names, it.Address().Name)
	}

	assert.Equal(t, []string{"lo", "lo", "eth0"}, names)
	assert.False(t, it.Next())

	n := 0
	for range it.All() {
		n++
	}
	assert.Zero(t, n)
}

func TestAddressIterator_AllStopsEarly(t *testing.T) {
	it := &AddressIterator{entries: []InterfaceAddress{
		{Name: "a"}, {Name: "b"}, {Name: "c"},
	}}

	for a := range it.All() {
		assert.Equal(t, "a", a.Name)
		break
	}

	// The remaining entries are still there for the next consumer.
	assert.True(t, it.Next())
	assert.Equal(t, "b", it.Address().Name)
}
