package ui

import (
	"fmt"
	"io"
	"strings"

	"subnet-planner/models"
	"subnet-planner/processor"
	"subnet-planner/utils"
)

// ANSI color codes for terminal output
const (
	ColorReset   = "\033[0m"
	ColorBold    = "\033[1m"
	ColorDim     = "\033[2m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorWhite   = "\033[37m"
)

// Console writes styled plain-terminal output. With color off every helper
// returns its text unchanged.
type Console struct {
	w     io.Writer
	color bool
}

func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

func (c *Console) paint(codes, text string) string {
	if !c.color {
		return text
	}
	return codes + text + ColorReset
}

// Color helper functions
func (c *Console) Title(text string) string     { return c.paint(ColorCyan+ColorBold, text) }
func (c *Console) Success(text string) string   { return c.paint(ColorGreen+ColorBold, text) }
func (c *Console) Error(text string) string     { return c.paint(ColorRed+ColorBold, text) }
func (c *Console) Warning(text string) string   { return c.paint(ColorYellow, text) }
func (c *Console) Info(text string) string      { return c.paint(ColorWhite, text) }
func (c *Console) Section(text string) string   { return c.paint(ColorBlue+ColorBold, text) }
func (c *Console) Highlight(text string) string { return c.paint(ColorCyan, text) }
func (c *Console) DimText(text string) string   { return c.paint(ColorDim+ColorWhite, text) }

// PrintBanner displays the application banner
func (c *Console) PrintBanner() {
	fmt.Fprintln(c.w, c.Title("    ╔══════════════════════════════════════════════════╗"))
	fmt.Fprint(c.w, c.Title("    ║  Subnet Planner "))
	fmt.Fprint(c.w, c.Highlight("IPv4"))
	fmt.Fprintln(c.w, c.Title("                             ║"))
	fmt.Fprint(c.w, c.Title("    ║  "))
	fmt.Fprint(c.w, c.Info("Split a CIDR block into equal-size subnets      "))
	fmt.Fprintln(c.w, c.Title("║"))
	fmt.Fprintln(c.w, c.Title("    ╚══════════════════════════════════════════════════╝"))
}

// PrintSectionHeader prints a formatted section header
func (c *Console) PrintSectionHeader(title string) {
	headerContent := fmt.Sprintf("─ %s ", title)
	remainingWidth := 60 - len([]rune(headerContent))
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	dashLine := strings.Repeat("─", remainingWidth)
	fmt.Fprintln(c.w, c.Section("┌"+headerContent+dashLine+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func (c *Console) PrintSectionFooter() {
	fmt.Fprintln(c.w, c.Section("└"+strings.Repeat("─", 60)+"┘"))
}

// PrintSubnet prints one record in the planner's labelled block layout.
func (c *Console) PrintSubnet(r models.SubnetResult) {
	broadcast := r.Broadcast
	if broadcast == "" {
		broadcast = "none (point-to-point)"
	}
	fmt.Fprintf(c.w, "%s %s\n", c.Section("Network:     "), c.Highlight(r.Network))
	fmt.Fprintf(c.w, "%s %s\n", c.Section("Netmask:     "), r.Netmask)
	fmt.Fprintf(c.w, "%s %s\n", c.Section("Broadcast:   "), broadcast)
	fmt.Fprintf(c.w, "%s %s\n", c.Section("Usable Range:"), r.UsableRange)
	fmt.Fprintf(c.w, "%s %s\n", c.Section("Usable Hosts:"), utils.FormatCount(r.UsableHosts))
}

// PrintPlan streams the window [offset, offset+limit) of a partition and
// finishes with the status line. limit 0 prints to the end.
func (c *Console) PrintPlan(part processor.Partition, offset, limit uint64) {
	shown := part.Window(offset, limit)
	for i := offset; i < offset+shown; i++ {
		if i > offset {
			fmt.Fprintln(c.w)
		}
		c.PrintSubnet(part.At(i).Result())
	}
	if shown > 0 {
		fmt.Fprintln(c.w)
	}
	c.PrintStatus(part)
	if shown < part.Len() {
		fmt.Fprintln(c.w, c.DimText(fmt.Sprintf("Showing %s of %s %s starting at #%d",
			utils.FormatCount(shown), utils.FormatCount(part.Len()),
			utils.Plural(part.Len(), "subnet", "subnets"), offset)))
	}
}

// PrintStatus prints the status bar line for a successful plan.
func (c *Console) PrintStatus(part processor.Partition) {
	fmt.Fprintln(c.w, c.Success("Number of Networks: "+utils.FormatCount(part.Len())))
	if part.Len() != part.Requested {
		fmt.Fprintln(c.w, c.Warning(fmt.Sprintf("Requested %s, rounded up to the next power of two",
			utils.FormatCount(part.Requested))))
	}
}

// PrintError prints an error the way the status bar shows it.
func (c *Console) PrintError(err error) {
	fmt.Fprintln(c.w, c.Error("Error: "+err.Error()))
}
