package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wayfarer/internal/flow"
	"github.com/desertthunder/wayfarer/internal/models"
	"github.com/desertthunder/wayfarer/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	DayListView ViewState = iota
	DayOverviewView
	BlockView
	ReflectionView
	TripCompleteView
)

// moodTags are the selectable mood options for the end-of-day reflection.
var moodTags = []string{"energized", "content", "inspired", "tired", "overwhelmed", "homesick"}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	engine   *flow.LiveEngine
	snapshot models.Snapshot
	pointer  models.ProgressPointer

	width  int
	height int

	dayList       list.Model
	moodList      list.Model
	selectedMoods map[string]bool
	journal       textinput.Model
	journalFocus  bool
	reflectionDay int

	pending bool
	spinner spinner.Model
	err     error
	help    help.Model
	keys    keyMap
}

type dayPickedMsg struct {
	pointer models.ProgressPointer
	err     error
}

type blockCompletedMsg struct {
	pointer      models.ProgressPointer
	destination  flow.Destination
	completedDay int
	err          error
}

type dayReflectedMsg struct {
	err error
}

// NewModel creates a new TUI model over the given engine and snapshot.
// The snapshot must carry a trip and an itinerary; the cmd layer checks both.
func NewModel(ctx context.Context, engine *flow.LiveEngine, snapshot models.Snapshot) *Model {
	m := &Model{
		ctx:           ctx,
		engine:        engine,
		snapshot:      snapshot,
		selectedMoods: map[string]bool{},
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.help)),
		help:          help.New(),
		keys:          newKeyMap(),
	}

	if snapshot.Pointer != nil {
		m.pointer = *snapshot.Pointer
	} else {
		m.pointer = flow.InitialPointer()
	}

	var dayItems []list.Item
	if snapshot.Itinerary != nil {
		for _, day := range snapshot.Itinerary.Days {
			dayItems = append(dayItems, dayItem{day: day})
		}
	}
	m.dayList = list.New(dayItems, list.NewDefaultDelegate(), 0, 0)
	m.dayList.Title = "Itinerary"

	moodItems := make([]list.Item, len(moodTags))
	for i, mood := range moodTags {
		moodItems[i] = moodItem{mood: mood, selected: func(tag string) bool { return m.selectedMoods[tag] }}
	}
	m.moodList = list.New(moodItems, list.NewDefaultDelegate(), 0, 0)
	m.moodList.Title = "How was the day?"
	m.moodList.SetShowStatusBar(false)
	m.moodList.SetFilteringEnabled(false)

	m.journal = textinput.New()
	m.journal.Placeholder = "Journal entry (optional)"
	m.journal.CharLimit = 280

	switch {
	case snapshot.Trip != nil && snapshot.Trip.TripComplete:
		m.view = TripCompleteView
	case snapshot.Pointer == nil:
		m.view = DayListView
	case flow.StartDay(m.pointer) == flow.LiveDayBlock:
		m.view = BlockView
	default:
		m.view = DayOverviewView
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dayList.SetSize(msg.Width-4, msg.Height-8)
		m.moodList.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case DayListView:
			return m.handleDayListKeys(msg)
		case DayOverviewView:
			return m.handleDayOverviewKeys(msg)
		case BlockView:
			return m.handleBlockKeys(msg)
		case ReflectionView:
			return m.handleReflectionKeys(msg)
		case TripCompleteView:
			return m.handleTripCompleteKeys(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dayPickedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.pointer = msg.pointer
		m.view = DayOverviewView
		return m, nil

	case blockCompletedMsg:
		m.pending = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.pointer = msg.pointer
		switch msg.destination {
		case flow.DayReflection:
			m.reflectionDay = msg.completedDay
			m.resetReflection()
			m.view = ReflectionView
		case flow.TripComplete:
			m.view = TripCompleteView
		default:
			m.view = BlockView
		}
		return m, nil

	case dayReflectedMsg:
		m.pending = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.resetReflection()
		m.view = DayOverviewView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case DayListView:
		return m.renderDayList()
	case DayOverviewView:
		return m.renderDayOverview()
	case BlockView:
		return m.renderBlock()
	case ReflectionView:
		return m.renderReflection()
	case TripCompleteView:
		return m.renderTripComplete()
	default:
		return ""
	}
}

func (m *Model) handleDayListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if selected, ok := m.dayList.SelectedItem().(dayItem); ok {
			return m, m.pickDay(selected.day.DayIndex)
		}
	}

	var cmd tea.Cmd
	m.dayList, cmd = m.dayList.Update(msg)
	return m, cmd
}

func (m *Model) handleDayOverviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = DayListView
	case "enter":
		m.view = BlockView
	}
	return m, nil
}

func (m *Model) handleBlockKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = DayListView
	case "y", "enter":
		m.pending = true
		return m, m.completeBlock()
	}
	return m, nil
}

func (m *Model) handleReflectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	if m.journalFocus {
		switch msg.String() {
		case "esc":
			m.journalFocus = false
			m.journal.Blur()
			return m, nil
		case "enter":
			return m.submitReflection()
		}

		var cmd tea.Cmd
		m.journal, cmd = m.journal.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if selected, ok := m.moodList.SelectedItem().(moodItem); ok {
			m.selectedMoods[selected.mood] = !m.selectedMoods[selected.mood]
		}
		return m, nil
	case "tab":
		m.journalFocus = true
		return m, m.journal.Focus()
	case "enter":
		return m.submitReflection()
	}

	var cmd tea.Cmd
	m.moodList, cmd = m.moodList.Update(msg)
	return m, cmd
}

func (m *Model) handleTripCompleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "enter":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case DayListView:
		m.dayList, cmd = m.dayList.Update(msg)
	case ReflectionView:
		m.moodList, cmd = m.moodList.Update(msg)
	}
	return m, cmd
}

func (m *Model) submitReflection() (tea.Model, tea.Cmd) {
	moods := m.moods()
	if len(moods) == 0 {
		m.err = fmt.Errorf("pick at least one mood before continuing")
		return m, nil
	}

	m.err = nil
	m.pending = true

	day := m.reflectionDay
	journal := m.journal.Value()
	return m, func() tea.Msg {
		_, err := m.engine.CompleteDay(m.ctx, m.snapshot.Trip.ID, day, moods, journal)
		return dayReflectedMsg{err: err}
	}
}

func (m *Model) moods() []string {
	var moods []string
	for _, mood := range moodTags {
		if m.selectedMoods[mood] {
			moods = append(moods, mood)
		}
	}
	return moods
}

func (m *Model) resetReflection() {
	m.selectedMoods = map[string]bool{}
	m.journal.SetValue("")
	m.journal.Blur()
	m.journalFocus = false
}

func (m *Model) pickDay(dayIndex int) tea.Cmd {
	return func() tea.Msg {
		pointer, err := m.engine.PickDay(dayIndex, m.snapshot.TotalDays())
		return dayPickedMsg{pointer: pointer, err: err}
	}
}

func (m *Model) completeBlock() tea.Cmd {
	completedDay := m.pointer.DayIndex
	return func() tea.Msg {
		next, destination, err := m.engine.CompleteBlock(m.ctx, *m.snapshot.Trip, m.pointer, m.snapshot.TotalDays())
		return blockCompletedMsg{pointer: next, destination: destination, completedDay: completedDay, err: err}
	}
}

func (m *Model) renderDayList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.dayList.View(), helpView)
}

func (m *Model) renderDayOverview() string {
	day := m.currentDay()
	if day == nil {
		return styles.err.Render(fmt.Sprintf("No itinerary entry for day %d\n\nPress q to quit", m.pointer.DayIndex))
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("Day %d", day.DayIndex)))
	b.WriteString("\n")
	if day.Summary != "" {
		b.WriteString(fmt.Sprintf("\n%s\n", day.Summary))
	}

	b.WriteString("\n")
	for _, blockName := range models.BlockOrder {
		block, ok := day.Blocks[blockName]
		if !ok {
			continue
		}
		marker := "  "
		if blockName == m.pointer.Block {
			marker = styles.ok.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, shared.TitleCase(string(blockName)), block.Title))
	}

	beginKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "begin"))
	helpView := m.help.ShortHelpView([]key.Binding{beginKey, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}

func (m *Model) renderBlock() string {
	day := m.currentDay()
	if day == nil {
		return styles.err.Render(fmt.Sprintf("No itinerary entry for day %d\n\nPress q to quit", m.pointer.DayIndex))
	}

	block, ok := day.Blocks[m.pointer.Block]
	if !ok {
		return styles.err.Render(fmt.Sprintf("Day %d has no %s block\n\nPress q to quit", day.DayIndex, m.pointer.Block))
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("Day %d · %s", day.DayIndex, shared.TitleCase(string(m.pointer.Block)))))
	b.WriteString(fmt.Sprintf("\n\n%s\n", block.Title))
	if block.Description != "" {
		b.WriteString(fmt.Sprintf("\n%s\n", block.Description))
	}
	if block.Location != "" {
		b.WriteString(fmt.Sprintf("\nLocation: %s\n", block.Location))
	}
	if block.Ticketed {
		b.WriteString(styles.warn.Render("\nTicketed: bring your booking\n"))
	}

	if m.pending {
		b.WriteString(fmt.Sprintf("\n%s %s\n", m.spinner.View(), styles.help.Render("Marking complete...")))
	}
	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("\nCould not mark complete: %v\n", m.err)))
	}

	completeKey := key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "complete block"))
	helpView := m.help.ShortHelpView([]key.Binding{completeKey, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}

func (m *Model) renderReflection() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("Day %d reflection", m.reflectionDay)))
	b.WriteString("\n\n")
	b.WriteString(m.moodList.View())
	b.WriteString(fmt.Sprintf("\n\nJournal: %s\n", m.journal.View()))

	if m.pending {
		b.WriteString(fmt.Sprintf("\n%s %s\n", m.spinner.View(), styles.help.Render("Saving reflection...")))
	}
	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("\n%v\n", m.err)))
	}

	tabKey := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "journal"))
	saveKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.toggle, tabKey, saveKey, m.keys.quit})
	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}

func (m *Model) renderTripComplete() string {
	title := styles.ok.Render("✓ Trip complete!")
	body := "Every day is done. Your reflections are saved locally;\nexport them with `wayfarer trip export`."
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.quit})
	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, helpView)
}

func (m *Model) currentDay() *models.Day {
	if m.snapshot.Itinerary == nil {
		return nil
	}
	return m.snapshot.Itinerary.Day(m.pointer.DayIndex)
}
