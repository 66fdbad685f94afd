package ui

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjunv/moodlog/internal/model"
	"github.com/arjunv/moodlog/internal/service"
)

// Model owns Bubble Tea state for the interactive quick-entry shell: a
// one-tap emotion list, a free-text analysis prompt, and a live
// distribution chart over today's entries.
type Model struct {
	db *sql.DB

	selected int
	mode     mode

	inputBuffer string
	counts      []service.ChartSlice
	lastEntry   *model.Entry

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeText
	modeConfirmClear
)

type loggedMsg struct {
	entry model.Entry
	err   error
}

type countsLoadedMsg struct {
	counts []service.ChartSlice
	err    error
}

type clearedMsg struct {
	removed int64
	err     error
}

// NewModel seeds the shell with an open store handle.
func NewModel(db *sql.DB) Model {
	return Model{
		db:         db,
		loading:    true,
		statusLine: "Loading today's distribution...",
	}
}

// Init loads the initial distribution.
func (m Model) Init() tea.Cmd {
	return m.loadCountsCmd()
}

// Update wires state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case loggedMsg:
		return m.handleLogged(msg)
	case countsLoadedMsg:
		return m.handleCountsLoaded(msg)
	case clearedMsg:
		return m.handleCleared(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeText:
		return m.handleTextKey(msg)
	case modeConfirmClear:
		return m.handleConfirmClearKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if m.selected < len(model.Emotions)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "enter", " ":
		emotion := model.Emotions[m.selected]
		m.statusLine = fmt.Sprintf("Logging %s...", emotion)
		m.errorLine = ""
		return m, m.quickCmd(emotion)
	case "i", "t":
		m.mode = modeText
		m.inputBuffer = ""
		m.statusLine = ""
		m.errorLine = ""
	case "r":
		m.loading = true
		m.statusLine = "Refreshing distribution..."
		m.errorLine = ""
		return m, m.loadCountsCmd()
	case "C":
		m.mode = modeConfirmClear
		m.statusLine = ""
		m.errorLine = ""
	}

	return m, nil
}

func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := strings.TrimSpace(m.inputBuffer)
		if text == "" {
			m.errorLine = "Entry cannot be empty. Type how you feel, or Esc to cancel."
			return m, nil
		}
		m.mode = modeNormal
		m.inputBuffer = ""
		m.statusLine = "Analyzing..."
		m.errorLine = ""
		return m, m.analyzeCmd(text)
	case tea.KeyEsc:
		m.mode = modeNormal
		m.inputBuffer = ""
		m.statusLine = "Cancelled."
		m.errorLine = ""
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyBackspace, tea.KeyCtrlH:
		if len(m.inputBuffer) > 0 {
			m.inputBuffer = trimLastRune(m.inputBuffer)
		}
	case tea.KeyCtrlU:
		m.inputBuffer = ""
	case tea.KeySpace:
		m.inputBuffer += " "
	case tea.KeyRunes:
		m.inputBuffer += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleConfirmClearKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeNormal
		m.statusLine = "Clearing all entries..."
		return m, m.clearCmd()
	case "n", "N", "esc":
		m.mode = modeNormal
		m.statusLine = "Clear cancelled."
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleLogged(msg loggedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Save failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	entry := msg.entry
	m.lastEntry = &entry
	m.statusLine = ""
	m.errorLine = ""
	m.loading = true
	return m, m.loadCountsCmd()
}

func (m Model) handleCountsLoaded(msg countsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load distribution: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.counts = msg.counts
	if m.statusLine == "Loading today's distribution..." || m.statusLine == "Refreshing distribution..." {
		m.statusLine = ""
	}
	return m, nil
}

func (m Model) handleCleared(msg clearedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Clear failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.lastEntry = nil
	m.statusLine = fmt.Sprintf("Deleted %d entries.", msg.removed)
	m.errorLine = ""
	m.loading = true
	return m, m.loadCountsCmd()
}

func (m Model) quickCmd(emotion model.Emotion) tea.Cmd {
	db := m.db
	return func() tea.Msg {
		entry, err := service.LogQuick(db, emotion, time.Now())
		return loggedMsg{entry: entry, err: err}
	}
}

func (m Model) analyzeCmd(text string) tea.Cmd {
	db := m.db
	return func() tea.Msg {
		entry, err := service.LogText(db, text, time.Now())
		return loggedMsg{entry: entry, err: err}
	}
}

func (m Model) loadCountsCmd() tea.Cmd {
	db := m.db
	return func() tea.Msg {
		summary, err := service.Summarize(db, time.Now().Format("2006-01-02"))
		if err != nil {
			return countsLoadedMsg{err: err}
		}
		return countsLoadedMsg{counts: service.ChartData(summary.Counts)}
	}
}

func (m Model) clearCmd() tea.Cmd {
	db := m.db
	return func() tea.Msg {
		removed, err := service.ClearAll(db)
		return clearedMsg{removed: removed, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("moodlog — how are you feeling?"))
	b.WriteString("\n\n")

	for i, e := range model.Emotions {
		cursor := " "
		if i == m.selected {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteByte(' ')
		b.WriteString(EmotionStyle(string(e)).Render("● " + string(e)))
		b.WriteByte('\n')
	}

	if m.lastEntry != nil {
		b.WriteByte('\n')
		b.WriteString(EmotionStyle(string(m.lastEntry.Emotion)).Render("● " + string(m.lastEntry.Emotion)))
		b.WriteByte(' ')
		b.WriteString(StressStyle(m.lastEntry.Stress).Render(fmt.Sprintf("Stress: %d/100", m.lastEntry.Stress)))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString("Today's distribution\n")
	if m.loading {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString(renderCounts(m.counts))
	}

	if m.errorLine != "" {
		b.WriteString("\n! ")
		b.WriteString(errorStyle.Render(m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteByte('\n')
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeText:
		b.WriteByte('\n')
		b.WriteString("Type your thoughts (Enter to analyze, Esc to cancel):\n")
		b.WriteString(promptStyle.Render("> "))
		b.WriteString(m.inputBuffer)
		b.WriteByte('\n')
	case modeConfirmClear:
		b.WriteByte('\n')
		b.WriteString("Delete all entries? (y/n)\n")
	}

	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("j/k select  enter/space log  i type text  r refresh  C clear all  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func renderCounts(counts []service.ChartSlice) string {
	maxValue := 0
	for _, c := range counts {
		if c.Value > maxValue {
			maxValue = c.Value
		}
	}
	if maxValue == 0 {
		return "(no entries yet)\n"
	}

	var b strings.Builder
	for _, c := range counts {
		bars := int(math.Round((float64(c.Value) / float64(maxValue)) * 20))
		if bars == 0 && c.Value > 0 {
			bars = 1
		}
		fmt.Fprintf(&b, "%s %s %d\n",
			EmotionStyle(c.Label).Render(fmt.Sprintf("%-12s", c.Label)),
			strings.Repeat("#", bars),
			c.Value,
		)
	}
	return b.String()
}

func trimLastRune(input string) string {
	if input == "" {
		return input
	}
	runes := []rune(input)
	return string(runes[:len(runes)-1])
}
