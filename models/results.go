package models

import "time"

// PlanReport is the exported form of one partition.
type PlanReport struct {
	Generated time.Time      `json:"generated" yaml:"generated"`
	Parent    string         `json:"parent" yaml:"parent"`
	Requested uint64         `json:"requested" yaml:"requested"`
	NewPrefix int            `json:"new_prefix" yaml:"new_prefix"`
	Netmask   string         `json:"netmask" yaml:"netmask"`
	Total     uint64         `json:"total" yaml:"total"`
	Subnets   []SubnetResult `json:"subnets" yaml:"subnets"`
}
