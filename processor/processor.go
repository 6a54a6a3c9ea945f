package processor

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"subnet-planner/models"
	"subnet-planner/utils"
)

// ErrTooManyRecords is returned when a request would materialise more
// records than output.max_records allows.
var ErrTooManyRecords = errors.New("too many records")

// Request is one planning call. Count is text so it can come straight from
// a form field or a CLI argument.
type Request struct {
	CIDR   string `json:"cidr" yaml:"cidr"`
	Count  string `json:"count" yaml:"count"`
	Offset uint64 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Limit  uint64 `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// Response is the successful answer to a Request. Subnets holds the
// requested window; Total is the full size of the partition.
type Response struct {
	Parent    string                `json:"parent" yaml:"parent"`
	Requested uint64                `json:"requested" yaml:"requested"`
	NewPrefix int                   `json:"new_prefix" yaml:"new_prefix"`
	Total     uint64                `json:"total" yaml:"total"`
	Offset    uint64                `json:"offset" yaml:"offset"`
	Subnets   []models.SubnetResult `json:"subnets" yaml:"subnets"`
}

type Processor struct {
	config *models.Config
	logger *log.Logger
}

func NewProcessor(config *models.Config, logger *log.Logger) *Processor {
	if config == nil {
		cfg := models.DefaultConfig
		config = &cfg
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Processor{config: config, logger: logger}
}

// Plan validates the request and returns the lazy partition.
func (p *Processor) Plan(req Request) (Partition, error) {
	start := time.Now()
	part, err := Plan(req.CIDR, req.Count)
	return p.logPlan(part, err, start)
}

// PlanCount is Plan for callers that already hold the count as an integer.
func (p *Processor) PlanCount(cidr string, count int64) (Partition, error) {
	start := time.Now()
	part, err := PlanCount(cidr, count)
	return p.logPlan(part, err, start)
}

func (p *Processor) logPlan(part Partition, err error, start time.Time) (Partition, error) {
	if err != nil {
		if pe, ok := models.AsPlanError(err); ok {
			p.logger.Info("request rejected", "kind", pe.Kind, "input", pe.Input, "reason", pe.Message)
		}
		return Partition{}, err
	}

	p.logger.Debug("partition computed",
		"parent", part.Parent.String(),
		"requested", part.Requested,
		"new_prefix", part.NewPrefix,
		"subnets", part.Len(),
		"elapsed", utils.FormatDuration(time.Since(start)))
	return part, nil
}

// Calculate plans the request and materialises the requested window.
func (p *Processor) Calculate(req Request) (*Response, error) {
	part, err := p.Plan(req)
	if err != nil {
		return nil, err
	}

	if err := p.checkRecordLimit(part.Window(req.Offset, req.Limit)); err != nil {
		return nil, err
	}

	return &Response{
		Parent:    part.Parent.String(),
		Requested: part.Requested,
		NewPrefix: part.NewPrefix,
		Total:     part.Len(),
		Offset:    req.Offset,
		Subnets:   part.Results(req.Offset, req.Limit),
	}, nil
}

// Report builds the export form of a whole partition.
func (p *Processor) Report(part Partition) (*models.PlanReport, error) {
	if err := p.checkRecordLimit(part.Len()); err != nil {
		return nil, err
	}
	return &models.PlanReport{
		Generated: time.Now(),
		Parent:    part.Parent.String(),
		Requested: part.Requested,
		NewPrefix: part.NewPrefix,
		Netmask:   models.NetmaskFor(part.NewPrefix).String(),
		Total:     part.Len(),
		Subnets:   part.Results(0, 0),
	}, nil
}

func (p *Processor) checkRecordLimit(n uint64) error {
	ceiling := uint64(p.config.Output.MaxRecords)
	if ceiling > 0 && n > ceiling {
		return fmt.Errorf("%w: %d subnets requested, limit is %d (use offset/limit or raise output.max_records)",
			ErrTooManyRecords, n, ceiling)
	}
	return nil
}
