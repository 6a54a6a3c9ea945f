package models

import (
	"encoding/binary"
	"strconv"
)

// IPv4 represents an IPv4 address as a uint32 in network byte order.
// Ordering is plain unsigned integer ordering.
type IPv4 uint32

// IPv4FromOctets builds an address from its four dotted-decimal octets.
func IPv4FromOctets(o [4]byte) IPv4 {
	return IPv4(binary.BigEndian.Uint32(o[:]))
}

// Octets returns the four bytes of the address, most significant first.
func (a IPv4) Octets() [4]byte {
	var o [4]byte
	binary.BigEndian.PutUint32(o[:], uint32(a))
	return o
}

func (a IPv4) String() string {
	o := a.Octets()
	b := make([]byte, 0, 15)
	for i, v := range o {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(v), 10)
	}
	return string(b)
}

// Add returns a+n. Callers stay inside a block, so overflow never occurs there.
func (a IPv4) Add(n uint32) IPv4 {
	return a + IPv4(n)
}

// Sub returns a-n.
func (a IPv4) Sub(n uint32) IPv4 {
	return a - IPv4(n)
}

// Mask clears every bit after the first bits bits.
func (a IPv4) Mask(bits int) IPv4 {
	return a & NetmaskFor(bits)
}

// NetmaskFor returns the netmask with the leading bits bits set.
// bits outside 0..32 are clamped.
func NetmaskFor(bits int) IPv4 {
	switch {
	case bits <= 0:
		return 0
	case bits >= 32:
		return 0xFFFFFFFF
	}
	return IPv4(uint32(0xFFFFFFFF) << (32 - bits))
}

// BlockSize returns the number of addresses in a block of the given prefix length.
func BlockSize(bits int) uint64 {
	if bits < 0 {
		bits = 0
	}
	if bits > 32 {
		bits = 32
	}
	return uint64(1) << (32 - bits)
}
