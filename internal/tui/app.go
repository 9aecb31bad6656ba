// Package tui provides the interactive Bubble Tea dashboard for fiscboard.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sjbeckles/fiscboard/internal/cli"
	"github.com/sjbeckles/fiscboard/internal/config"
	"github.com/sjbeckles/fiscboard/internal/metrics"
	"github.com/sjbeckles/fiscboard/internal/tui/components"
	"github.com/sjbeckles/fiscboard/internal/tui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	report *metrics.Report

	// Display state
	unit           cli.Unit
	showComparison bool

	// UI state
	width     int
	height    int
	activeTab int
	scroll    int
	showHelp  bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 180

	minHalfPageScroll = 1
	minContentHeight  = 5
	statusOverhead    = 4 // tab bar rows + pill line + status bar
)

// NewApp creates a new TUI app model.
func NewApp(report *metrics.Report, unit cli.Unit, showComparison bool) App {
	a := App{
		report:         report,
		unit:           unit,
		showComparison: showComparison,
		needSetup:      !config.Exists(),
	}
	if a.needSetup {
		a.setupVals = defaultSetupValues(unit)
		a.setupForm = newSetupForm(&a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute rebuilds the derived report after a policy change. The tables
// are fixed, so a rebuild can only fail if the dataset itself is broken,
// which BuildReport already caught at startup.
func (a *App) recompute(policy metrics.GrowthPolicy) {
	if r, err := metrics.BuildReport(a.report.Data, metrics.NewEngine(policy)); err == nil {
		a.report = r
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Forward to setup form if active
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.scroll > 0 {
				a.scroll--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			a.scroll++
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first two lines
			if msg.Y <= 1 {
				if tab := a.tabAt(msg.X, msg.Y); tab >= 0 {
					a.activeTab = tab
					a.scroll = 0
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "u":
			a.unit = a.unit.Next()
			a.saveDisplayConfig()
			return a, nil

		case "c":
			a.showComparison = !a.showComparison
			a.saveDisplayConfig()
			return a, nil

		case "p":
			policy := metrics.AbsolutePrior
			if a.report.Engine.Policy == metrics.AbsolutePrior {
				policy = metrics.SignedPrior
			}
			a.recompute(policy)
			a.saveDisplayConfig()
			return a, nil

		case "T":
			a.cycleTheme()
			return a, nil

		case "j", "down":
			a.scroll++
			return a, nil

		case "k", "up":
			if a.scroll > 0 {
				a.scroll--
			}
			return a, nil

		case "ctrl+d":
			a.scroll += a.halfPage()
			return a, nil

		case "ctrl+u":
			a.scroll -= a.halfPage()
			if a.scroll < 0 {
				a.scroll = 0
			}
			return a, nil

		case "g":
			a.scroll = 0
			return a, nil

		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			a.scroll = 0
			return a, nil

		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			a.scroll = 0
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				a.scroll = 0
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a *App) halfPage() int {
	half := (a.height - statusOverhead) / 2
	if half < minHalfPageScroll {
		half = minHalfPageScroll
	}
	return half
}

func (a *App) cycleTheme() {
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			theme.SetActive(theme.All[(i+1)%len(theme.All)].Name)
			break
		}
	}
	a.saveDisplayConfig()
}

// saveDisplayConfig persists display preferences (best-effort).
func (a App) saveDisplayConfig() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg.Display.Unit = string(a.unit)
	cfg.Display.Theme = theme.Active.Name
	cfg.Display.ShowComparison = a.showComparison
	cfg.Metrics.GrowthPolicy = string(a.report.Engine.Policy)
	_ = config.Save(cfg)
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

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
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
		"\n  Terminal too narrow (%d cols)\n\n  fiscboard needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

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
		{"s r e b a d t h x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Scroll content"},
		{"^d ^u", "Half-page scroll"},
		{"g", "Back to top"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-18s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Display"))
	b.WriteString("\n")
	displayBindings := []struct{ key, desc string }{
		{"u", "Cycle currency unit"},
		{"c", "Toggle prior-year comparison"},
		{"p", "Toggle growth policy"},
		{"T", "Cycle color theme"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range displayBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-18s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + report pill)
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render("Government of Barbados") +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(a.report.Data.StatementDate)
	if a.report.Engine.Policy == metrics.SignedPrior {
		pill += pillStyle.Render(" │ ") + pillAccentStyle.Render("signed growth")
	}
	pill += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Render status bar
	statusBar := components.RenderStatusBar(w, a.unit.Label(), a.report.Data.FiscalYear)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderSummaryTab(cw)
	case 1:
		content = a.renderRevenueTab(cw)
	case 2:
		content = a.renderExpenditureTab(cw)
	case 3:
		content = a.renderBalanceTab(cw)
	case 4:
		content = a.renderAuditTab(cw)
	case 5:
		content = a.renderDebtTab(cw)
	case 6:
		content = a.renderTransfersTab(cw)
	case 7:
		content = a.renderHighlightsTab(cw)
	case 8:
		content = a.renderSettingsTab(cw)
	}

	// 5. Apply scroll, then truncate + pad to exactly contentH lines
	content, a.scroll = scrollLines(content, a.scroll, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure entire terminal is filled with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// scrollLines drops the first offset lines, clamping the offset so the
// last page stays full. Returns the visible text and the clamped offset.
func scrollLines(s string, offset, visible int) (string, int) {
	lines := strings.Split(s, "\n")
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return strings.Join(lines[offset:], "\n"), offset
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
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

// ─── Mouse Support ──────────────────────────────────────────────

// tabAt returns the tab index at the given coordinate, or -1 if none.
// The tab bar renders five tabs on the first row and the rest on the
// second, each row with a one-column left margin and two-column gaps.
func (a App) tabAt(x, y int) int {
	var row []int
	switch y {
	case 0:
		row = []int{0, 1, 2, 3, 4}
	case 1:
		for i := 5; i < len(components.Tabs); i++ {
			row = append(row, i)
		}
	default:
		return -1
	}

	pos := 1 // leading space
	for _, idx := range row {
		tabW := components.TabVisualWidth(components.Tabs[idx], idx == a.activeTab)
		if x >= pos && x < pos+tabW {
			return idx
		}
		pos += tabW + 2
	}
	return -1
}
