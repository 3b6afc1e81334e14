// Package tui provides the interactive Bubble Tea dashboard for finplan.
package tui

import (
	"fmt"
	"strings"

	"github.com/finplanhq/finplan/internal/engine"
	"github.com/finplanhq/finplan/internal/model"
	"github.com/finplanhq/finplan/internal/plan"
	"github.com/finplanhq/finplan/internal/tui/components"
	"github.com/finplanhq/finplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ProjectionsMsg is sent when an engine run finishes. Seq identifies the
// edit that requested the run; stale results are dropped (last write wins).
type ProjectionsMsg struct {
	Seq         int
	Projections model.Projections
	Err         error
}

// App is the root Bubble Tea model.
type App struct {
	// Plan state
	assumptions model.Assumptions
	planPath    string
	dirty       bool // edits not yet written to disk

	// Projection state
	proj       model.Projections
	computed   bool
	computing  bool
	computeErr error
	seq        int // request sequence for last-write-wins

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	saveErr   error

	// Quick-edit form (huh)
	editForm *huh.Form
	editVals editValues
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 180

	minContentHeight = 5

	// Runway gauge comfort horizon: two years of cash reads as safe.
	runwayComfortMonths = 24
)

// NewApp creates a new TUI app model around a loaded plan.
func NewApp(a model.Assumptions, planPath string) App {
	return App{
		assumptions: a,
		planPath:    planPath,
		seq:         1,
		computing:   true,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		recomputeCmd(a.seq, a.assumptions),
	)
}

// recomputeCmd runs the projection engine off the update loop. The full
// assumptions value is captured by the closure, so later edits cannot race
// with an in-flight run.
func recomputeCmd(seq int, a model.Assumptions) tea.Cmd {
	return func() tea.Msg {
		p, err := engine.Compute(a)
		return ProjectionsMsg{Seq: seq, Projections: p, Err: err}
	}
}

// recompute bumps the request sequence and schedules a fresh engine run.
func (a *App) recompute() tea.Cmd {
	a.seq++
	a.computing = true
	return recomputeCmd(a.seq, a.assumptions)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.editForm != nil {
			a.editForm = a.editForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.computed || a.showHelp || a.editForm != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.computed {
			return a, nil
		}

		// Quick-edit form intercepts all keys
		if a.editForm != nil {
			return a.updateEditForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "e":
			a.editForm = newEditForm(a.assumptions, &a.editVals)
			if a.width > 0 {
				a.editForm = a.editForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.editForm.Init()

		case "w":
			a.saveErr = plan.Save(a.planPath, a.assumptions)
			if a.saveErr == nil {
				a.dirty = false
			}
			return a, nil

		case "1":
			return a.switchScenario(model.ScenarioConservative)
		case "2":
			return a.switchScenario(model.ScenarioBase)
		case "3":
			return a.switchScenario(model.ScenarioAggressive)

		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil

	case ProjectionsMsg:
		if msg.Seq != a.seq {
			// A newer edit is already in flight; drop this stale result.
			return a, nil
		}
		a.computing = false
		a.computeErr = msg.Err
		if msg.Err == nil {
			a.proj = msg.Projections
			a.computed = true
		}
		return a, nil
	}

	// Forward unhandled messages to the edit form (cursor blinks, etc.)
	if a.editForm != nil {
		return a.updateEditForm(msg)
	}

	return a, nil
}

func (a App) switchScenario(sc model.Scenario) (tea.Model, tea.Cmd) {
	if a.assumptions.Timeline.Scenario == sc {
		return a, nil
	}
	a.assumptions.Timeline.Scenario = sc
	a.dirty = true
	return a, a.recompute()
}

func (a App) updateEditForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.editForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.editForm = f
	}

	if a.editForm.State == huh.StateCompleted {
		a.editForm = nil
		if applyEditValues(&a.assumptions, a.editVals) {
			a.dirty = true
			return a, a.recompute()
		}
		return a, nil
	}

	if a.editForm.State == huh.StateAborted {
		a.editForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.computed {
		return a.viewComputing()
	}

	if a.editForm != nil {
		return a.editForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewComputing() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ finplan"))
	b.WriteString(subtitleStyle.Render(" · Financial Planner"))
	b.WriteString("\n\n")
	if a.computeErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		b.WriteString(errStyle.Render(a.computeErr.Error()))
	} else {
		b.WriteString(subtitleStyle.Render("Running projection..."))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o r c p f s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"e", "Edit assumptions"},
		{"w", "Write plan to disk"},
		{"1 2 3", "Conservative / Base / Aggressive"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar
	header := components.RenderTabBar(a.activeTab, w)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, string(a.assumptions.Timeline.Scenario), a.computing, a.dirty)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderRevenueTab(cw)
	case 2:
		content = a.renderCostsTab(cw)
	case 3:
		content = a.renderPnLTab(cw)
	case 4:
		content = a.renderCashFlowTab(cw)
	case 5:
		content = a.renderScenariosTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func yearLabels() []string {
	labels := make([]string, model.HorizonYears)
	for i := range labels {
		labels[i] = fmt.Sprintf("Y%d", i+1)
	}
	return labels
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
