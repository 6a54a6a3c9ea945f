// Subnet Planner splits an IPv4 CIDR block into the smallest set of equal
// subnets that covers a requested count.
//
// Usage:
//
//	subnet-planner                      # full-screen planner
//	subnet-planner calc 10.0.0.0/24 4   # print the plan
//	subnet-planner prompt               # line-by-line prompts
//
// See --help for all commands and flags.
package main

import (
	"os"

	"subnet-planner/cli"
)

func main() {
	os.Exit(cli.Execute())
}
