package processor

import (
	"fmt"
	"iter"
	"math/bits"

	"subnet-planner/models"
	"subnet-planner/parser"
)

// Partition is a uniform split of a parent block into 2^n equal subnets.
// It holds no per-subnet state; every subnet is derived from its index.
type Partition struct {
	Parent    models.NetworkBlock
	Requested uint64
	NewPrefix int
}

// BitsNeeded returns the smallest b with 2^b >= count. count <= 1 yields 0.
func BitsNeeded(count uint64) int {
	if count <= 1 {
		return 0
	}
	return bits.Len64(count - 1)
}

// Split partitions parent into the smallest power-of-two number of equal
// subnets that is at least count.
func Split(parent models.NetworkBlock, count uint64) (Partition, error) {
	if count == 0 {
		return Partition{}, models.NewPlanError(models.KindInvalidCount, "0", "number of networks must be a positive integer")
	}
	if parent.Bits < 0 || parent.Bits > 32 || parent.Base.Mask(parent.Bits) != parent.Base {
		return Partition{}, models.NewPlanError(models.KindInvalidCIDR, parent.String(), "not a valid IPv4 network")
	}

	newPrefix := parent.Bits + BitsNeeded(count)
	if newPrefix > 32 {
		return Partition{}, models.NewPlanError(models.KindCountExceedsAddrSpace, parent.String(),
			fmt.Sprintf("too many subnets for given CIDR block: %d subnets need /%d", count, newPrefix))
	}

	return Partition{Parent: parent, Requested: count, NewPrefix: newPrefix}, nil
}

// Plan parses both inputs and splits. It is the single-call form of the planner.
func Plan(cidrText, countText string) (Partition, error) {
	parent, err := parser.ParseNetworkBlock(cidrText)
	if err != nil {
		return Partition{}, err
	}
	count, err := parser.ParseCount(countText)
	if err != nil {
		return Partition{}, err
	}
	return Split(parent, count)
}

// PlanCount is Plan with an integer count. Zero and negative counts are
// rejected the same way as their text forms.
func PlanCount(cidrText string, count int64) (Partition, error) {
	parent, err := parser.ParseNetworkBlock(cidrText)
	if err != nil {
		return Partition{}, err
	}
	n, err := parser.ValidateCount(count)
	if err != nil {
		return Partition{}, err
	}
	return Split(parent, n)
}

// Len is the number of subnets produced, always a power of two.
func (p Partition) Len() uint64 {
	return uint64(1) << (p.NewPrefix - p.Parent.Bits)
}

// SubnetSize is the number of addresses in each subnet.
func (p Partition) SubnetSize() uint64 {
	return models.BlockSize(p.NewPrefix)
}

// At returns subnet i in ascending address order. It panics when i >= Len().
func (p Partition) At(i uint64) models.NetworkBlock {
	if i >= p.Len() {
		panic(fmt.Sprintf("processor: subnet index %d out of range [0,%d)", i, p.Len()))
	}
	offset := uint32(i * p.SubnetSize())
	return models.NewNetworkBlock(p.Parent.Base.Add(offset), p.NewPrefix)
}

// All yields every subnet with its index, lowest address first.
func (p Partition) All() iter.Seq2[uint64, models.NetworkBlock] {
	return func(yield func(uint64, models.NetworkBlock) bool) {
		n := p.Len()
		for i := uint64(0); i < n; i++ {
			if !yield(i, p.At(i)) {
				return
			}
		}
	}
}

// Window returns the number of subnets in [offset, offset+limit), with
// limit 0 meaning "to the end".
func (p Partition) Window(offset, limit uint64) uint64 {
	n := p.Len()
	if offset >= n {
		return 0
	}
	rest := n - offset
	if limit == 0 || limit > rest {
		return rest
	}
	return limit
}

// Results derives the display records for a window of the partition.
func (p Partition) Results(offset, limit uint64) []models.SubnetResult {
	count := p.Window(offset, limit)
	out := make([]models.SubnetResult, 0, count)
	for i := offset; i < offset+count; i++ {
		out = append(out, p.At(i).Result())
	}
	return out
}
