// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/stats"
)

const (
	tabOverview = iota
	tabLetters
	tabWords
	tabHistogram
)

const (
	topLetterCount = 5
	topWordCount   = 5
	fallbackWidth  = 80
)

var tabNames = []string{"Overview", "Letters", "Words", "Histogram"}

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	dict   model.Dictionary
	source string

	activeTab   int
	viewports   []viewport.Model
	letterTable table.Model

	width  int
	height int
}

// ParseTab maps a tab name to its index. The empty name selects the overview.
func ParseTab(name string) (int, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return tabOverview, nil
	}
	for i, tab := range tabNames {
		if strings.ToLower(tab) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown tab %q (available: overview, letters, words, histogram)", name)
}

// NewModel constructs a stats UI model for a finalized dictionary.
func NewModel(dict model.Dictionary, source string, startTab, width int) *Model {
	if startTab < 0 || startTab >= len(tabNames) {
		startTab = tabOverview
	}
	m := &Model{
		dict:      dict,
		source:    source,
		activeTab: startTab,
		width:     width,
	}
	m.viewports = make([]viewport.Model, len(tabNames))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.letterTable = buildLetterTable(dict, 1)
	if startTab == tabLetters {
		m.letterTable.Focus()
	}
	m.renderTabContents()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabLetters {
				m.letterTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabLetters {
				m.letterTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabLetters {
				var cmd tea.Cmd
				m.letterTable, cmd = m.letterTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderHelp(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.letterTable.SetWidth(m.width)
	m.letterTable.SetHeight(maxInt(1, vpHeight-1))
}

func (m *Model) moveTab(delta int) {
	count := len(tabNames)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabLetters {
		m.letterTable.Focus()
	} else {
		m.letterTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, tab := range tabNames {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := fmt.Sprintf("File: %s  letters=%d  words=%d  lines=%d",
		m.source, m.dict.Counters.Chars, m.dict.Counters.Words, m.dict.Counters.Lines)
	return tabs + "\n" + headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderHelp() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Top/Bottom: g/G  Quit: q")
}

func (m *Model) renderBody(height int) string {
	if m.activeTab == tabLetters {
		if len(m.dict.Letters) == 0 {
			return fitLines("No letters found.", m.width, height)
		}
		return fitLines(tableMutedStyle.Render(m.letterTable.View()), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.dict, width))
	m.viewports[tabWords].SetContent(renderWith(stats.RenderWordFrequency, m.dict))
	m.viewports[tabHistogram].SetContent(renderWith(stats.RenderHistogram, m.dict))
}

func renderOverview(d model.Dictionary, width int) string {
	longest := d.LongestWord
	if longest == "" {
		longest = "-"
	}
	cards := []string{
		metricCard("Letters", fmt.Sprintf("%d", d.Counters.Chars)),
		metricCard("Words", fmt.Sprintf("%d", d.Counters.Words)),
		metricCard("Lines", fmt.Sprintf("%d", d.Counters.Lines)),
		metricCard("Vocabulary", fmt.Sprintf("%d", len(d.Vocabulary))),
		metricCard("Longest word", longest),
	}
	var summary string
	if width < fallbackWidth {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}

	sections := []string{
		summary,
		"Letters a-z",
		"[" + stats.Sparkline(stats.LetterSeries(d)) + "]",
		" abcdefghijklmnopqrstuvwxyz",
		"",
		"Top letters",
		strings.TrimRight(renderTopLetters(d), "\n"),
		"",
		"Top words",
		renderTopWords(d),
	}
	return strings.TrimRight(strings.Join(sections, "\n"), "\n")
}

func renderTopLetters(d model.Dictionary) string {
	var buf bytes.Buffer
	if err := stats.RenderTopLetters(&buf, d, topLetterCount); err != nil {
		return fmt.Sprintf("Failed to render letters: %v", err)
	}
	return buf.String()
}

func renderTopWords(d model.Dictionary) string {
	top := stats.TopWords(d, topWordCount)
	if len(top) == 0 {
		return "No words found."
	}
	lines := make([]string, 0, len(top))
	for _, wc := range top {
		lines = append(lines, fmt.Sprintf("%-*s %d", stats.WordColumnWidth, wc.Word, wc.Count))
	}
	return strings.Join(lines, "\n")
}

func renderWith(render func(io.Writer, model.Dictionary) error, d model.Dictionary) string {
	var buf bytes.Buffer
	if err := render(&buf, d); err != nil {
		return fmt.Sprintf("Failed to render: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func buildLetterTable(d model.Dictionary, height int) table.Model {
	columns := []table.Column{
		{Title: "Letter", Width: 6},
		{Title: "Count", Width: 8},
		{Title: "Share", Width: 8},
		{Title: "Bar", Width: stats.MaxBarStars + 8},
	}
	total := d.LetterTotal()
	letters := d.PresentLetters()
	rows := make([]table.Row, 0, len(letters))
	for _, lc := range letters {
		rows = append(rows, table.Row{
			string(lc.Letter),
			fmt.Sprintf("%d", lc.Count),
			fmt.Sprintf("%.2f%%", stats.Share(lc.Count, total)),
			stats.CappedBar(lc.Count),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
	)
	t.SetStyles(letterTableStyles())
	return t
}

func letterTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
