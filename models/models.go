package models

import "errors"

// ErrorKind names one class of rejected planner input.
type ErrorKind string

const (
	KindInvalidCIDR           ErrorKind = "InvalidCidrFormat"
	KindInvalidCount          ErrorKind = "InvalidCount"
	KindCountExceedsAddrSpace ErrorKind = "SubnetCountExceedsAddressSpace"
)

// Sentinels for errors.Is. A *PlanError matches the sentinel of its Kind.
var (
	ErrInvalidCIDR           = errors.New("invalid CIDR format")
	ErrInvalidCount          = errors.New("invalid subnet count")
	ErrCountExceedsAddrSpace = errors.New("subnet count exceeds address space")
)

// PlanError reports why a planning request was rejected.
type PlanError struct {
	Kind    ErrorKind `json:"error_kind" yaml:"error_kind"`
	Input   string    `json:"input" yaml:"input"`
	Message string    `json:"message" yaml:"message"`
}

func (e *PlanError) Error() string {
	if e.Input == "" {
		return e.Message
	}
	return e.Message + ": '" + e.Input + "'"
}

func (e *PlanError) Is(target error) bool {
	switch target {
	case ErrInvalidCIDR:
		return e.Kind == KindInvalidCIDR
	case ErrInvalidCount:
		return e.Kind == KindInvalidCount
	case ErrCountExceedsAddrSpace:
		return e.Kind == KindCountExceedsAddrSpace
	}
	return false
}

// NewPlanError is a small constructor used by parser and processor.
func NewPlanError(kind ErrorKind, input, message string) *PlanError {
	return &PlanError{Kind: kind, Input: input, Message: message}
}

// AsPlanError unwraps err into a *PlanError when it is one.
func AsPlanError(err error) (*PlanError, bool) {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
