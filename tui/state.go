package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"subnet-planner/models"
	"subnet-planner/processor"
	"subnet-planner/utils"
)

// AppState represents the current state of the application
type AppState int

const (
	StateInput AppState = iota
	StateResults
	StateError
)

const (
	fieldCIDR = iota
	fieldCount
	fieldTotal
)

// Model represents the main TUI model
type Model struct {
	state  AppState
	width  int
	height int

	// Pane layout
	leftPaneWidth  int
	rightPaneWidth int
	showRightPane  bool

	// Input fields
	inputs []textinput.Model
	focus  int

	// Collaborators
	config    *models.Config
	processor *processor.Processor
	writer    *utils.ReportWriter
	logger    *log.Logger

	// Current plan
	request      processor.Request
	partition    processor.Partition
	hasPlan      bool
	resultScroll uint64

	// Status bar
	status      string
	statusIsErr bool
	exporting   bool
	animFrame   int

	// Error handling
	err error

	// Output summary for right pane
	outputSummary      []string
	outputScrollOffset int
}

// NewModel creates a new TUI model. Nil collaborators fall back to defaults.
func NewModel(config *models.Config, proc *processor.Processor, writer *utils.ReportWriter, logger *log.Logger) Model {
	if config == nil {
		cfg := models.DefaultConfig
		config = &cfg
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if proc == nil {
		proc = processor.NewProcessor(config, logger)
	}
	if writer == nil {
		writer = utils.NewReportWriter(config.Output.Directory)
	}

	m := Model{
		state:         StateInput,
		inputs:        make([]textinput.Model, fieldTotal),
		config:        config,
		processor:     proc,
		writer:        writer,
		logger:        logger,
		outputSummary: []string{},
	}

	cidr := textinput.New()
	cidr.Prompt = ""
	cidr.Placeholder = "10.0.0.0/24"
	cidr.CharLimit = len("255.255.255.255/32") + 2
	cidr.Width = 24
	cidr.PlaceholderStyle = placeholderStyle
	cidr.Focus()
	m.inputs[fieldCIDR] = cidr

	count := textinput.New()
	count.Prompt = ""
	count.Placeholder = "4"
	count.CharLimit = 24
	count.Width = 24
	count.PlaceholderStyle = placeholderStyle
	m.inputs[fieldCount] = count

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State exposes the current state, mainly for tests.
func (m Model) State() AppState {
	return m.state
}

// Partition returns the current plan, if any.
func (m Model) Partition() (processor.Partition, bool) {
	return m.partition, m.hasPlan
}

// Status returns the status bar text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusIsErr
}

// Err returns the last planning error shown to the user.
func (m Model) Err() error {
	return m.err
}
