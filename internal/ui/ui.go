package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/registrar"
	"github.com/desertthunder/registrar/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CourseListView ViewState = iota
	PromptView
	StudentView
)

// promptMode selects what the student ID entered in [PromptView] is used for.
type promptMode int

const (
	promptRegister promptMode = iota
	promptDrop
	promptLookup
)

// Model represents the TUI application state.
type Model struct {
	view       ViewState
	registrar  *registrar.Registrar
	logger     *log.Logger
	width      int
	height     int
	courseList list.Model
	input      textinput.Model
	mode       promptMode
	courseCode string
	student    *models.StudentDetails
	status     string
	failed     bool
	help       help.Model
	keys       keyMap
}

// NewModel creates a new TUI model over reg.
func NewModel(reg *registrar.Registrar, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	input := textinput.New()
	input.Placeholder = "S001"
	input.Prompt = "Student ID: "
	input.CharLimit = 32
	input.Width = 20

	courseList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	courseList.Title = "Available Courses"
	courseList.DisableQuitKeybindings()
	courseList.SetShowHelp(false)

	return &Model{
		view:       CourseListView,
		registrar:  reg,
		logger:     shared.WithLogger(logger, "component", "tui"),
		courseList: courseList,
		input:      input,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// ViewState returns the active view.
func (m *Model) ViewState() ViewState { return m.view }

// Status returns the last outcome message and whether it was a failure.
func (m *Model) Status() (string, bool) { return m.status, m.failed }

// Init loads the catalog.
func (m *Model) Init() tea.Cmd {
	return m.loadCourses()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.courseList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case CourseListView:
			return m.handleCourseListKeys(msg)
		case PromptView:
			return m.handlePromptKeys(msg)
		case StudentView:
			return m.handleStudentKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateComponents(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case CourseListView:
		body = m.renderCourseList()
	case PromptView:
		body = m.renderPrompt()
	case StudentView:
		body = m.renderStudent()
	}

	if status := styles.Status(m.status, m.failed); status != "" {
		return fmt.Sprintf("%s\n\n%s", body, status)
	}
	return body
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgCoursesLoaded:
		records := msg.data.([]models.CourseRecord)
		return m, m.courseList.SetItems(courseItems(records))

	case MsgOperationDone:
		result := msg.data.(operationResult)
		m.status = registrar.Outcome(result.action, result.err)
		m.failed = result.err != nil
		m.view = CourseListView
		if m.failed {
			m.logger.Debug("operation rejected", "action", result.action, "student", result.studentID,
				"course", result.courseCode, "error", result.err)
		}
		return m, m.loadCourses()

	case MsgStudentLoaded:
		result := msg.data.(studentResult)
		if result.err != nil {
			m.status = registrar.MsgStudentMissing
			m.failed = true
			m.view = CourseListView
			return m, nil
		}
		m.student = result.details
		m.status = ""
		m.failed = false
		m.view = StudentView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleCourseListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.courseList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.courseList, cmd = m.courseList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.register):
		return m, m.openPrompt(promptRegister)
	case key.Matches(msg, m.keys.drop):
		return m, m.openPrompt(promptDrop)
	case key.Matches(msg, m.keys.student):
		return m, m.openPrompt(promptLookup)
	}

	var cmd tea.Cmd
	m.courseList, cmd = m.courseList.Update(msg)
	return m, cmd
}

func (m *Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.view = CourseListView
		return m, nil
	case "enter":
		studentID := strings.TrimSpace(m.input.Value())
		if studentID == "" {
			return m, nil
		}
		m.input.Blur()
		return m, m.submit(studentID)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleStudentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = CourseListView
		m.student = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CourseListView:
		m.courseList, cmd = m.courseList.Update(msg)
	case PromptView:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// openPrompt switches to [PromptView]. Register and drop act on the highlighted course.
func (m *Model) openPrompt(mode promptMode) tea.Cmd {
	if mode != promptLookup {
		selected, ok := m.courseList.SelectedItem().(courseItem)
		if !ok {
			return nil
		}
		m.courseCode = selected.course.Code
	}

	m.mode = mode
	m.view = PromptView
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) submit(studentID string) tea.Cmd {
	reg, code := m.registrar, m.courseCode
	switch m.mode {
	case promptRegister:
		return func() tea.Msg {
			return operationDoneMsg(models.ActionRegister, studentID, code, reg.Register(studentID, code))
		}
	case promptDrop:
		return func() tea.Msg {
			return operationDoneMsg(models.ActionDrop, studentID, code, reg.Drop(studentID, code))
		}
	default:
		return func() tea.Msg {
			return studentLoadedMsg(reg.DescribeStudent(studentID))
		}
	}
}

func (m *Model) loadCourses() tea.Cmd {
	reg := m.registrar
	return func() tea.Msg {
		return coursesLoadedMsg(reg.ListCourses())
	}
}

func (m *Model) renderCourseList() string {
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n\n%s", m.courseList.View(), helpView)
}

func (m *Model) renderPrompt() string {
	var title string
	switch m.mode {
	case promptRegister:
		title = fmt.Sprintf("Register a student for %s", m.courseCode)
	case promptDrop:
		title = fmt.Sprintf("Drop a student from %s", m.courseCode)
	default:
		title = "Look up a student"
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", styles.title.Render(title), m.input.View(), helpView)
}

func (m *Model) renderStudent() string {
	if m.student == nil {
		return styles.err.Render("No student selected\n\nPress esc to go back")
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("%s (%s)", m.student.Name, m.student.ID)))
	b.WriteString("\nRegistered Courses:\n")
	if len(m.student.Courses) == 0 {
		b.WriteString(styles.warn.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, title := range m.student.Courses {
		fmt.Fprintf(&b, "  • %s\n", title)
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}
