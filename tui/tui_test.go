package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subnet-planner/models"
	"subnet-planner/utils"
)

func newTestModel(t *testing.T, cfg *models.Config) Model {
	t.Helper()
	return sized(t, NewModel(cfg, nil, nil, nil))
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// press delivers a key and drops the returned command (cursor blinks and the like).
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m, _ = send(t, m, msg)
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func key(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: k})
}

// run executes a calculate or export command and feeds its result back,
// the way the bubbletea runtime would.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	switch msg.(type) {
	case PlanResultMsg, ExportResultMsg:
	default:
		t.Fatalf("unexpected message %T", msg)
	}
	m, _ = send(t, m, msg)
	return m
}

func submit(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	status, _ := m.Status()
	require.Equal(t, "Calculating...", status)
	return run(t, m, cmd)
}

func calculate(t *testing.T, m Model, cidr, count string) Model {
	t.Helper()
	m = typeText(t, m, cidr)
	m = key(t, m, tea.KeyEnter) // moves to the empty count field
	m = typeText(t, m, count)
	return submit(t, m)
}

// export presses e and then runs the export itself; the batched tick is left out.
func export(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.NotNil(t, cmd)
	require.True(t, m.exporting)
	status, _ := m.Status()
	require.True(t, strings.HasPrefix(status, "Exporting"))
	return run(t, m, exportCmd(m.processor, m.writer, m.partition))
}

func TestModel_StartsInInput(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, StateInput, m.State())
	_, ok := m.Partition()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "CIDR Block")
	assert.Contains(t, m.View(), "Number of Networks")
}

func TestModel_CalculateShowsResults(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "10.0.0.0/24", "3")

	require.Equal(t, StateResults, m.State())
	part, ok := m.Partition()
	require.True(t, ok)
	assert.Equal(t, 26, part.NewPrefix)

	status, isErr := m.Status()
	assert.False(t, isErr)
	assert.Equal(t, "Number of Networks: 4", status)

	view := m.View()
	assert.Contains(t, view, "10.0.0.0/26")
	assert.Contains(t, view, "10.0.0.1 - 10.0.0.62")
	assert.Contains(t, view, "Rounded up")

	summary := strings.Join(m.SessionSummary(), "\n")
	assert.Contains(t, summary, "10.0.0.0/24 into 3")
	assert.Contains(t, summary, "Rounded up")
}

func TestModel_TabSwitchesField(t *testing.T) {
	m := newTestModel(t, nil)
	m = key(t, m, tea.KeyTab)
	assert.Equal(t, fieldCount, m.focus)
	m = key(t, m, tea.KeyShiftTab)
	assert.Equal(t, fieldCIDR, m.focus)
}

func TestModel_InvalidInputShowsError(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "10.0.0.1/24", "4")

	require.Equal(t, StateError, m.State())
	assert.ErrorIs(t, m.Err(), models.ErrInvalidCIDR)

	status, isErr := m.Status()
	assert.True(t, isErr)
	assert.True(t, strings.HasPrefix(status, "Error: "))
	assert.Contains(t, m.View(), "host bits set")
	assert.Contains(t, strings.Join(m.SessionSummary(), "\n"), string(models.KindInvalidCIDR))

	_, ok := m.Partition()
	assert.False(t, ok)

	// any key goes back to editing
	m = key(t, m, tea.KeyBackspace)
	assert.Equal(t, StateInput, m.State())
}

func TestModel_ExceedsAddressSpace(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "10.0.0.0/30", "8")

	require.Equal(t, StateError, m.State())
	assert.ErrorIs(t, m.Err(), models.ErrCountExceedsAddrSpace)
}

func TestModel_ErrorThenRetry(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "10.0.0.0/24", "abc")
	require.Equal(t, StateError, m.State())

	m = key(t, m, tea.KeyEsc)
	require.Equal(t, StateInput, m.State())
	for range 3 {
		m = key(t, m, tea.KeyBackspace)
	}
	m = typeText(t, m, "2")
	m = submit(t, m)

	require.Equal(t, StateResults, m.State())
	part, _ := m.Partition()
	assert.Equal(t, uint64(2), part.Len())
	assert.NoError(t, m.Err())
}

func TestModel_ScrollResults(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "10.0.0.0/16", "256")
	require.Equal(t, StateResults, m.State())

	visible := uint64(m.visibleCards())
	require.Greater(t, visible, uint64(0))

	m = key(t, m, tea.KeyDown)
	assert.Equal(t, uint64(1), m.resultScroll)

	m = key(t, m, tea.KeyPgDown)
	assert.Equal(t, 1+visible, m.resultScroll)

	m = key(t, m, tea.KeyEnd)
	assert.Equal(t, 256-visible, m.resultScroll)
	assert.Contains(t, m.View(), "10.0.255.0/24")

	m = key(t, m, tea.KeyDown)
	assert.Equal(t, 256-visible, m.resultScroll, "scroll stops at the last page")

	m = key(t, m, tea.KeyHome)
	assert.Equal(t, uint64(0), m.resultScroll)
	m = key(t, m, tea.KeyUp)
	assert.Equal(t, uint64(0), m.resultScroll)

	m, _ = send(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, uint64(m.config.TUI.ScrollStep), m.resultScroll)
}

func TestModel_HugePartitionRendersWindow(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "0.0.0.0/0", "4294967296")
	require.Equal(t, StateResults, m.State())

	m = key(t, m, tea.KeyEnd)
	view := m.View()
	assert.Contains(t, view, "255.255.255.255/32")
	assert.Contains(t, view, "4,294,967,296")
}

func TestModel_EscTogglesBetweenInputAndResults(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "10.0.0.0/24", "4")
	require.Equal(t, StateResults, m.State())

	m = key(t, m, tea.KeyEsc)
	assert.Equal(t, StateInput, m.State())
	m = key(t, m, tea.KeyEsc)
	assert.Equal(t, StateResults, m.State())
}

func TestModel_EscWithoutPlanQuits(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_Export(t *testing.T) {
	dir := t.TempDir()
	cfg := models.DefaultConfig
	m := sized(t, NewModel(&cfg, nil, utils.NewReportWriter(dir), nil))

	m = calculate(t, m, "10.0.0.0/30", "2")
	require.Equal(t, StateResults, m.State())

	m = export(t, m)
	status, isErr := m.Status()
	require.False(t, isErr, status)
	assert.Contains(t, status, "Report written to")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "10.0.0.0_30-x2_"))
}

func TestModel_ExportOverLimitFails(t *testing.T) {
	cfg := models.DefaultConfig
	cfg.Output.MaxRecords = 2
	m := sized(t, NewModel(&cfg, nil, utils.NewReportWriter(t.TempDir()), nil))

	m = calculate(t, m, "10.0.0.0/24", "4")
	m = export(t, m)

	status, isErr := m.Status()
	assert.True(t, isErr)
	assert.Contains(t, status, "Export failed")
}

func TestModel_HistoryIsBounded(t *testing.T) {
	cfg := models.DefaultConfig
	cfg.TUI.HistorySize = 3
	m := newTestModel(t, &cfg)

	m = calculate(t, m, "10.0.0.0/24", "4")
	m = key(t, m, tea.KeyEsc)
	m = typeText(t, m, "x")
	m = submit(t, m)

	assert.Len(t, m.SessionSummary(), 3)
}

func TestModel_ViewBeforeWindowSize(t *testing.T) {
	m := NewModel(nil, nil, nil, nil)
	assert.NotEmpty(t, m.View())
}

func TestModel_ExportIndicator(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "10.0.0.0/24", "4")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.True(t, m.exporting)

	m, cmd := send(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	status, _ := m.Status()
	assert.Equal(t, "Exporting..", status)

	// a second e while exporting is ignored
	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	assert.Nil(t, cmd)

	m, _ = send(t, m, ExportResultMsg{Path: "outputs/plan.yml"})
	assert.False(t, m.exporting)
	_, cmd = send(t, m, TickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestModel_CtrlUEditsFieldInInput(t *testing.T) {
	m := calculate(t, newTestModel(t, nil), "10.0.0.0/24", "4")
	require.True(t, m.showRightPane)

	// in results ctrl+u scrolls the session pane and keeps the state
	m = key(t, m, tea.KeyCtrlU)
	assert.Equal(t, StateResults, m.State())

	m = key(t, m, tea.KeyEsc)
	require.Equal(t, StateInput, m.State())
	before := m.inputs[m.focus].Value()
	require.NotEmpty(t, before)

	m = key(t, m, tea.KeyCtrlU)
	assert.Empty(t, m.inputs[m.focus].Value(), "ctrl+u deletes to line start in the focused field")
}
