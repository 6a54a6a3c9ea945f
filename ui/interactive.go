package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"subnet-planner/models"
	"subnet-planner/processor"
)

// Prompter reads answers line by line.
type Prompter struct {
	console *Console
	in      *bufio.Scanner
}

func NewPrompter(in io.Reader, console *Console) *Prompter {
	return &Prompter{console: console, in: bufio.NewScanner(in)}
}

// PromptInput prompts the user for input with a default value. ok is false at end of input.
func (p *Prompter) PromptInput(prompt, defaultValue string) (string, bool) {
	if defaultValue != "" {
		fmt.Fprintf(p.console.w, "%s [default: %s]: ", p.console.Section(prompt), p.console.Highlight(defaultValue))
	} else {
		fmt.Fprintf(p.console.w, "%s: ", p.console.Section(prompt))
	}

	if !p.in.Scan() {
		fmt.Fprintln(p.console.w)
		return "", false
	}

	input := strings.TrimSpace(p.in.Text())
	if input == "" && defaultValue != "" {
		return defaultValue, true
	}
	return input, true
}

// RunInteractiveMode asks for a CIDR block and a count until it gets a valid
// pair, prints the plan, and repeats until the user declines or input ends.
func RunInteractiveMode(p *Prompter, proc *processor.Processor, pageSize uint64) error {
	c := p.console
	c.PrintBanner()

	lastCIDR := "10.0.0.0/24"
	for {
		c.PrintSectionHeader("Plan Subnets")
		cidr, ok := p.PromptInput("CIDR Block", lastCIDR)
		if !ok {
			return nil
		}
		count, ok := p.PromptInput("Number of Networks", "")
		if !ok {
			return nil
		}

		part, err := proc.Plan(processor.Request{CIDR: cidr, Count: count})
		if err != nil {
			var pe *models.PlanError
			if !errors.As(err, &pe) {
				return err
			}
			c.PrintError(pe)
			c.PrintSectionFooter()
			continue
		}
		lastCIDR = cidr
		c.PrintSectionFooter()

		p.page(part, pageSize)

		again, ok := p.PromptInput("Plan another block? (y/n)", "y")
		if !ok || !strings.EqualFold(again, "y") {
			return nil
		}
	}
}

// page prints the plan pageSize records at a time; pageSize 0 prints all.
func (p *Prompter) page(part processor.Partition, pageSize uint64) {
	c := p.console
	c.PrintSectionHeader(fmt.Sprintf("Subnets of %s", part.Parent))
	defer c.PrintSectionFooter()

	if pageSize == 0 || part.Len() <= pageSize {
		c.PrintPlan(part, 0, 0)
		return
	}

	for offset := uint64(0); offset < part.Len(); offset += pageSize {
		c.PrintPlan(part, offset, pageSize)
		if offset+pageSize >= part.Len() {
			break
		}
		more, ok := p.PromptInput("Show more? (y/n)", "y")
		if !ok || !strings.EqualFold(more, "y") {
			break
		}
	}
}
