// Package tui is an interactive terminal browser for the project catalog.
// Keystrokes feed a search.Session; results arrive once the input has been
// idle for the session delay.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/app/catalog"
	"folio/app/models"
	"folio/app/search"
)

// resultMsg carries a settled search result.
type resultMsg search.Result

// closedMsg reports that the session results channel was closed.
type closedMsg struct{}

// Model is the bubbletea model for the project browser.
type Model struct {
	session *search.Session
	styles  Styles
	input   textinput.Model
	spinner spinner.Model

	tags   []string
	tagIdx int // -1 selects all tags

	result   search.Result
	width    int
	quitting bool
}

// New creates a browser over session. tags is the tag universe offered for
// filtering and initial is shown until the first search settles.
func New(session *search.Session, tags []string, initial []models.Project) Model {
	ti := textinput.New()
	ti.Placeholder = "Search projects..."
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.Width = 50
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session: session,
		styles:  DefaultStyles(),
		input:   ti,
		spinner: sp,
		tags:    tags,
		tagIdx:  -1,
		result:  search.Result{Projects: initial},
		width:   80,
	}
}

// waitForResult blocks until the session publishes a result.
func waitForResult(ch <-chan search.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return resultMsg(r)
	}
}

// Init starts the cursor blink, the spinner and the result listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForResult(m.session.Results()))
}

// Query returns the query described by the current input and tag selection.
func (m Model) Query() catalog.ProjectQuery {
	q := catalog.ProjectQuery{Text: m.input.Value()}
	if m.tagIdx >= 0 && m.tagIdx < len(m.tags) {
		q.Tag = m.tags[m.tagIdx]
	}
	return q
}

// Update handles keys, results and spinner ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyTab:
			m.tagIdx = m.nextTag(1)
			m.session.Update(m.Query())
			return m, nil
		case tea.KeyShiftTab:
			m.tagIdx = m.nextTag(-1)
			m.session.Update(m.Query())
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.session.Update(m.Query())
		}
		return m, cmd

	case resultMsg:
		m.result = search.Result(msg)
		return m, waitForResult(m.session.Results())

	case closedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// nextTag cycles through "all" followed by every tag.
func (m Model) nextTag(step int) int {
	n := len(m.tags) + 1
	pos := (m.tagIdx + 1 + step + n) % n
	return pos - 1
}

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Projects"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.tagLine())
	b.WriteString("\n")

	if m.session.State() == search.StatePending {
		b.WriteString(m.styles.Status.Render(m.spinner.View() + " Searching..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.Status.Render(fmt.Sprintf("Showing %d %s", len(m.result.Projects), plural(len(m.result.Projects)))))
		b.WriteString("\n")
	}

	if len(m.result.Projects) == 0 {
		if m.result.Filtered() {
			b.WriteString(m.styles.Empty.Render("No projects found. Try adjusting your search or filter criteria."))
		} else {
			b.WriteString(m.styles.Empty.Render("No projects yet."))
		}
		b.WriteString("\n")
	}
	for _, p := range m.result.Projects {
		b.WriteString("\n")
		b.WriteString(m.styles.ItemTitle.Render(p.Title))
		if len(p.Tags) > 0 {
			b.WriteString(" ")
			b.WriteString(m.styles.Muted.Render("[" + strings.Join(p.Tags, ", ") + "]"))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Description.Width(m.width).Render(p.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab/shift+tab: tag • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) tagLine() string {
	parts := make([]string, 0, len(m.tags)+2)
	parts = append(parts, m.styles.Label.Render("Tag:"))
	render := func(name string, active bool) string {
		if active {
			return m.styles.ActiveTag.Render(name)
		}
		return m.styles.Tag.Render(name)
	}
	parts = append(parts, render("All", m.tagIdx < 0))
	for i, t := range m.tags {
		parts = append(parts, render(t, i == m.tagIdx))
	}
	return strings.Join(parts, " ")
}

func plural(n int) string {
	if n == 1 {
		return "project"
	}
	return "projects"
}
