// Package tui provides the Bubble Tea pattern finder interface.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/slotword/internal/model"
	"github.com/verte-zerg/slotword/internal/pattern"
	"github.com/verte-zerg/slotword/internal/search"
	"github.com/verte-zerg/slotword/internal/wordlist"
)

type dictStatus int

const (
	dictLoading dictStatus = iota
	dictReady
	dictFailed
)

// headerLines is the number of rows above the results viewport.
const headerLines = 6

type dictLoadedMsg struct {
	dict *wordlist.Dictionary
	err  error
}

// Model implements the Bubble Tea finder UI.
type Model struct {
	config model.Config
	state  *pattern.State
	engine *search.Engine
	loader wordlist.Loader
	log    *log.Logger

	dict    *wordlist.Dictionary
	status  dictStatus
	loadErr error

	focus  int
	result *search.Result
	notice string

	lengthMode  bool
	lengthInput textinput.Model
	results     viewport.Model

	width  int
	height int
}

var (
	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Width(1).
			Align(lipgloss.Center)
	focusSlotStyle = slotStyle.
			BorderForeground(lipgloss.Color("#C89A3A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a finder TUI model. The dictionary is loaded by
// loader when the program starts.
func NewModel(cfg model.Config, engine *search.Engine, loader wordlist.Loader, logger *log.Logger) *Model {
	input := textinput.New()
	input.Prompt = "Length: "
	input.CharLimit = 3
	input.Placeholder = strconv.Itoa(cfg.Length)

	m := &Model{
		config:      cfg,
		state:       pattern.NewState(cfg.Length),
		engine:      engine,
		loader:      loader,
		log:         logger,
		lengthInput: input,
		results:     viewport.New(0, 0),
	}
	m.state.OnLengthChange = m.onLengthChange
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		dict, err := loader.Load(context.Background())
		return dictLoadedMsg{dict: dict, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeResults()
		return m, nil
	case dictLoadedMsg:
		m.handleDictLoaded(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.lengthMode {
			return m, m.handleLengthKey(msg)
		}
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleDictLoaded(msg dictLoadedMsg) {
	if msg.err != nil || msg.dict == nil {
		m.status = dictFailed
		m.loadErr = msg.err
		if m.loadErr == nil {
			m.loadErr = search.ErrDictionaryUnavailable
		}
		m.log.Error("failed to load dictionary", "lang", m.config.Lang, "err", m.loadErr)
		return
	}
	m.dict = msg.dict
	m.status = dictReady
	if m.state.SetMaxLength(msg.dict.MaxLength()) {
		m.notice = fmt.Sprintf("length shortened to %d, the longest word in the dictionary", m.state.Len())
	}
	m.log.Debug("dictionary loaded", "lang", msg.dict.Lang(), "words", msg.dict.Len(), "max", msg.dict.MaxLength())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""
	switch msg.Type {
	case tea.KeyEnter:
		m.runSearch()
	case tea.KeyEsc:
		m.state.Reset()
		m.focus = 0
		m.result = nil
		m.results.SetContent("")
	case tea.KeyBackspace:
		m.handleBackspace()
	case tea.KeyDelete:
		m.state.Clear(m.focus)
	case tea.KeyLeft:
		if m.focus > 0 {
			m.focus--
		}
	case tea.KeyRight:
		if m.focus < m.state.Len()-1 {
			m.focus++
		}
	case tea.KeyCtrlL:
		m.lengthMode = true
		m.lengthInput.SetValue("")
		return m.lengthInput.Focus()
	case tea.KeySpace:
		m.handleRunes([]rune{' '})
	case tea.KeyRunes:
		m.handleRunes(msg.Runes)
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleBackspace() {
	if !m.state.Slot(m.focus).IsWildcard() {
		m.state.Clear(m.focus)
		return
	}
	if m.focus > 0 {
		m.focus--
	}
}

func (m *Model) handleRunes(runes []rune) {
	for _, r := range runes {
		switch r {
		case '+', '=':
			if err := m.state.Increment(true); err != nil {
				m.notice = lengthNotice(err)
			}
			continue
		case '-', '_':
			m.state.Decrement(true)
			continue
		}
		res := m.state.Input(m.focus, string(r))
		if res.Rejected {
			m.notice = fmt.Sprintf("%q is not a letter; use space or ? for any letter", r)
			continue
		}
		if res.Advance {
			m.focus++
		}
	}
}

func (m *Model) handleLengthKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.lengthMode = false
		m.lengthInput.Blur()
		return nil
	case tea.KeyEnter:
		m.lengthMode = false
		m.lengthInput.Blur()
		m.applyLength(m.lengthInput.Value())
		return nil
	}
	var cmd tea.Cmd
	m.lengthInput, cmd = m.lengthInput.Update(msg)
	return cmd
}

func (m *Model) applyLength(raw string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		m.notice = fmt.Sprintf("%q is not a number", raw)
		return
	}
	if err := m.state.SetLength(n, true); err != nil {
		m.notice = lengthNotice(err)
	}
}

func (m *Model) onLengthChange(n int) {
	if m.focus >= n {
		m.focus = n - 1
	}
}

func lengthNotice(err error) string {
	if hints := errors.FlattenHints(err); hints != "" {
		return "length rejected: " + hints
	}
	return "length must be at least 1"
}

func (m *Model) runSearch() {
	switch m.status {
	case dictLoading:
		m.notice = "dictionary is still loading"
		return
	case dictFailed:
		m.notice = "dictionary unavailable: search disabled"
		return
	}
	res, err := m.engine.Search(m.state.CurrentPattern(), m.dict)
	if err != nil {
		m.notice = err.Error()
		m.log.Error("search failed", "err", err)
		return
	}
	m.result = &res
	m.renderResults()
}

func (m *Model) resizeResults() {
	m.results.Width = m.width
	h := m.height - headerLines - 1
	if h < 1 {
		h = 1
	}
	m.results.Height = h
	m.renderResults()
}

func (m *Model) renderResults() {
	if m.result == nil {
		m.results.SetContent("")
		return
	}
	lines := layoutWords(m.result.Shown, m.width)
	m.results.SetContent(wordStyle.Render(strings.Join(lines, "\n")))
	m.results.GotoTop()
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.renderHeader()))
	b.WriteByte('\n')
	b.WriteString(m.renderSlots())
	b.WriteByte('\n')
	if m.lengthMode {
		b.WriteString(m.lengthInput.View())
	} else if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteByte('\n')
	b.WriteString(headerStyle.Render(m.renderSummary()))
	b.WriteByte('\n')
	if m.result != nil && len(m.result.Shown) > 0 {
		b.WriteString(m.results.View())
		b.WriteByte('\n')
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderHeader() string {
	segments := []string{fmt.Sprintf("Length %d", m.state.Len())}
	switch m.status {
	case dictLoading:
		segments = append(segments, "loading "+m.config.Lang+" dictionary...")
	case dictReady:
		segments = append(segments, fmt.Sprintf("%s · %d words · max length %d", m.dict.Lang(), m.dict.Len(), m.dict.MaxLength()))
	case dictFailed:
		segments = append(segments, fmt.Sprintf("dictionary unavailable: %v", m.loadErr))
	}
	return strings.Join(segments, "  ")
}

func (m *Model) renderSlots() string {
	boxes := make([]string, m.state.Len())
	for i := range boxes {
		value := m.state.Slot(i).Display()
		if value == "" {
			value = " "
		}
		style := slotStyle
		if i == m.focus {
			style = focusSlotStyle
		}
		boxes[i] = style.Render(value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m *Model) renderSummary() string {
	if m.result == nil {
		return ""
	}
	if m.result.Total == 0 {
		return "No matching words."
	}
	summary := fmt.Sprintf("Found %d matching words", m.result.Total)
	if m.result.Sampled {
		summary += fmt.Sprintf(" (showing %d random)", len(m.result.Shown))
	}
	return summary + ":"
}

func (m *Model) renderFooter() string {
	return footerStyle.Render("enter search  ←/→ move  +/- length  ctrl+l set length  esc clear  ↑/↓ scroll  ctrl+c quit")
}
