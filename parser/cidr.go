package parser

import (
	"errors"
	"net/netip"
	"strconv"
	"strings"

	"subnet-planner/models"
)

// ParseNetworkBlock parses "a.b.c.d/n" into a block. The address must be the
// network address of the prefix; host addresses such as 10.0.0.1/24 are rejected.
func ParseNetworkBlock(text string) (models.NetworkBlock, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return models.NetworkBlock{}, models.NewPlanError(models.KindInvalidCIDR, text, "CIDR block is required")
	}
	if !strings.Contains(s, "/") {
		return models.NetworkBlock{}, models.NewPlanError(models.KindInvalidCIDR, text, "missing prefix length, expected address/prefix")
	}

	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return models.NetworkBlock{}, models.NewPlanError(models.KindInvalidCIDR, text, "not a valid IPv4 network")
	}
	if !prefix.Addr().Is4() {
		return models.NetworkBlock{}, models.NewPlanError(models.KindInvalidCIDR, text, "only IPv4 networks are supported")
	}
	if prefix.Masked() != prefix {
		return models.NetworkBlock{}, models.NewPlanError(models.KindInvalidCIDR, text,
			"host bits set, network address is "+prefix.Masked().String())
	}

	return models.NetworkBlock{
		Base: models.IPv4FromOctets(prefix.Addr().As4()),
		Bits: prefix.Bits(),
	}, nil
}

// ParseCount parses a desired subnet count. Zero, negative and non-numeric
// input is rejected. A positive value too large for 64 bits can never fit an
// IPv4 block and is reported as exceeding the address space.
func ParseCount(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, models.NewPlanError(models.KindInvalidCount, text, "number of networks is required")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
			return 0, models.NewPlanError(models.KindCountExceedsAddrSpace, text, "too many subnets for any IPv4 block")
		}
		return 0, models.NewPlanError(models.KindInvalidCount, text, "number of networks must be a positive integer")
	}
	return ValidateCount(n)
}

// ValidateCount checks an already-numeric count.
func ValidateCount(n int64) (uint64, error) {
	if n <= 0 {
		return 0, models.NewPlanError(models.KindInvalidCount, strconv.FormatInt(n, 10), "number of networks must be a positive integer")
	}
	return uint64(n), nil
}
