package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	pbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizkit/internal/progress"
	"quizkit/internal/quiz"
	"quizkit/internal/upload"
)

// Model renders the quiz session using Bubble Tea. The program loop is
// the spec'd single-threaded executor: every state change goes through
// Reduce inside Update.
type Model struct {
	state       State
	controller  *Controller
	picker      filepicker.Model
	spinner     spinner.Model
	bar         pbar.Model
	noColor     bool
	termProgram string
	width       int
}

// Options configures the session model.
type Options struct {
	NoColor     bool
	StartDir    string
	TermProgram string
	// Staged pre-seeds the session with candidates from CLI arguments.
	Staged []upload.Candidate
}

// NewModel constructs a session model bound to a controller.
func NewModel(controller *Controller, opts Options) Model {
	picker := filepicker.New()
	picker.AllowedTypes = []string{".pdf"}
	if opts.StartDir != "" {
		picker.CurrentDirectory = opts.StartDir
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	bar := pbar.New(pbar.WithDefaultGradient())

	state := NewState()
	if len(opts.Staged) > 0 {
		state = Reduce(state, Event{Kind: EventFilesChosen, Candidates: opts.Staged})
	}
	return Model{
		state:       state,
		controller:  controller,
		picker:      picker,
		spinner:     sp,
		bar:         bar,
		noColor:     opts.NoColor,
		termProgram: opts.TermProgram,
	}
}

// Init starts the picker, the spinner, and the event wait.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), m.spinner.Tick, waitForEvent(m.controller.Events()))
}

// Update consumes key input, picker selections, and session events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.bar.Width = min(typed.Width-4, 60)
		return m, nil
	case EventMsg:
		m.state = Reduce(m.state, typed.Event)
		return m, waitForEvent(m.controller.Events())
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(typed)
	}
	return m.updatePicker(msg)
}

// updateKey routes key input by phase.
func (m Model) updateKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if key.Paste {
		m.state = m.handleDrop(string(key.Runes))
		return m, nil
	}
	switch m.state.Phase {
	case PhaseIdle:
		if key.String() == "q" {
			return m, tea.Quit
		}
		return m.updatePicker(key)
	case PhaseAwaitingUpload:
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			id := m.controller.Submit(m.state.Staged)
			m.state = Reduce(m.state, Event{Kind: EventSubmit, SubmissionID: id})
			return m, nil
		case "p":
			m.state = Reduce(m.state, Event{Kind: EventClear})
			return m, nil
		}
		return m, nil
	case PhaseSubmitting, PhaseStreaming:
		if key.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case PhaseComplete:
		return m.updateQuizKey(key)
	}
	return m, nil
}

// updateQuizKey handles answering and navigation in the quiz view.
func (m Model) updateQuizKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.state = Reduce(m.state, Event{Kind: EventClear})
		return m, m.picker.Init()
	case "left", "h":
		m.state = Reduce(m.state, Event{Kind: EventCursor, Delta: -1})
		return m, nil
	case "right", "l":
		m.state = Reduce(m.state, Event{Kind: EventCursor, Delta: 1})
		return m, nil
	case "a", "b", "c", "d":
		letter, err := quiz.ParseLetter(key.String())
		if err != nil {
			return m, nil
		}
		m.state = Reduce(m.state, Event{Kind: EventAnswer, Letter: letter})
		return m, nil
	}
	return m, nil
}

// updatePicker forwards messages to the file picker and funnels any
// selection through the shared acceptance predicate.
func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Phase != PhaseIdle {
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.state = Reduce(m.state, Event{Kind: EventFilesChosen, Candidates: candidatesForPaths([]string{path})})
		return m, cmd
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.state = Reduce(m.state, Event{Kind: EventFilesChosen, Candidates: candidatesForPaths([]string{path})})
		return m, cmd
	}
	return m, cmd
}

// handleDrop treats pasted text as dropped file paths.
func (m Model) handleDrop(text string) State {
	if !upload.DropSupported(m.termProgram) {
		return Reduce(m.state, Event{Kind: EventDropUnsupported})
	}
	paths := strings.Fields(text)
	if len(paths) == 0 {
		return m.state
	}
	return Reduce(m.state, Event{Kind: EventFilesChosen, Candidates: candidatesForPaths(paths)})
}

// candidatesForPaths stats each path into a candidate. Unreadable paths
// become empty candidates that the acceptance predicate rejects.
func candidatesForPaths(paths []string) []upload.Candidate {
	candidates := make([]upload.Candidate, 0, len(paths))
	for _, path := range paths {
		candidate, err := upload.FromPath(path)
		if err != nil {
			candidates = append(candidates, upload.Candidate{Name: path})
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

// View renders the session for the current phase.
func (m Model) View() string {
	header := renderHeader(m.state, m.noColor)
	notice := renderNotice(m.state, m.noColor)

	var body string
	switch m.state.Phase {
	case PhaseIdle:
		body = "Pick a PDF (max 5 MB):\n" + m.picker.View()
	case PhaseAwaitingUpload:
		body = renderStaged(m.state, m.noColor)
	case PhaseSubmitting:
		body = m.spinner.View() + " Preparing upload..."
	case PhaseStreaming:
		body = renderProgress(m.state, m.bar.ViewAs(progress.Project(m.state.Slots).Fraction()), m.noColor)
	case PhaseComplete:
		body = renderQuiz(m.state, m.noColor)
	}

	sections := []string{header}
	if notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, body, renderHelp(m.state, m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// EventMsg wraps a session event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// waitForEvent blocks until a session event is available.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}
