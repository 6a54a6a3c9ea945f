package models

import (
	"strconv"
)

// NetworkBlock is an IPv4 block in CIDR form. Base always has every bit
// after Bits cleared.
type NetworkBlock struct {
	Base IPv4
	Bits int
}

// SubnetResult holds the derived, display-ready fields of one block.
type SubnetResult struct {
	Network        string `json:"network" yaml:"network"`
	PrefixLength   int    `json:"prefix_length" yaml:"prefix_length"`
	Netmask        string `json:"netmask" yaml:"netmask"`
	Broadcast      string `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`
	UsableRange    string `json:"usable_range" yaml:"usable_range"`
	TotalAddresses uint64 `json:"total_addresses" yaml:"total_addresses"`
	UsableHosts    uint64 `json:"usable_hosts" yaml:"usable_hosts"`
}

// NewNetworkBlock masks base to bits so the result always satisfies the block invariant.
func NewNetworkBlock(base IPv4, bits int) NetworkBlock {
	return NetworkBlock{Base: base.Mask(bits), Bits: bits}
}

func (b NetworkBlock) String() string {
	return b.Base.String() + "/" + strconv.Itoa(b.Bits)
}

// Size is the number of addresses in the block.
func (b NetworkBlock) Size() uint64 {
	return BlockSize(b.Bits)
}

func (b NetworkBlock) Netmask() IPv4 {
	return NetmaskFor(b.Bits)
}

// Last returns the highest address in the block.
func (b NetworkBlock) Last() IPv4 {
	return b.Base | ^b.Netmask()
}

// Broadcast returns the broadcast address. A /31 has none (RFC 3021).
func (b NetworkBlock) Broadcast() (IPv4, bool) {
	if b.Bits == 31 {
		return 0, false
	}
	return b.Last(), true
}

// UsableRange returns the first and last host-assignable addresses.
//
//	/32  the single address
//	/31  both addresses (point-to-point)
//	else network+1 through broadcast-1
func (b NetworkBlock) UsableRange() (IPv4, IPv4) {
	switch b.Bits {
	case 32:
		return b.Base, b.Base
	case 31:
		return b.Base, b.Last()
	}
	return b.Base.Add(1), b.Last().Sub(1)
}

// UsableHosts counts the addresses in UsableRange.
func (b NetworkBlock) UsableHosts() uint64 {
	switch b.Bits {
	case 32:
		return 1
	case 31:
		return 2
	}
	return b.Size() - 2
}

// Contains reports whether addr falls inside the block.
func (b NetworkBlock) Contains(addr IPv4) bool {
	return addr.Mask(b.Bits) == b.Base
}

// Result derives the display record for the block.
func (b NetworkBlock) Result() SubnetResult {
	r := SubnetResult{
		Network:        b.String(),
		PrefixLength:   b.Bits,
		Netmask:        b.Netmask().String(),
		TotalAddresses: b.Size(),
		UsableHosts:    b.UsableHosts(),
	}
	if bc, ok := b.Broadcast(); ok {
		r.Broadcast = bc.String()
	}

	first, last := b.UsableRange()
	if b.Bits == 32 {
		r.UsableRange = first.String()
	} else {
		r.UsableRange = first.String() + " - " + last.String()
	}
	return r
}
