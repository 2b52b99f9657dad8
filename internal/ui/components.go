package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// listItem represents a course or task row in a list. The row id travels
// with the item so a reload can never leave a stale index→id mapping behind.
type listItem struct {
	id    int64
	label string
}

func (i listItem) FilterValue() string { return i.label }

// listDelegate is a compact single-line delegate for course and task lists.
type listDelegate struct{}

func (d listDelegate) Height() int                             { return 1 }
func (d listDelegate) Spacing() int                            { return 0 }
func (d listDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d listDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(listItem)
	if !ok {
		return
	}

	var s string
	if index == m.Index() {
		s = selectedItemStyle.Render("▸ " + i.label)
	} else {
		s = unselectedItemStyle.Render("  " + i.label)
	}

	_, _ = fmt.Fprint(w, s)
}

func newListModel(title string) list.Model {
	l := list.New([]list.Item{}, listDelegate{}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = titleStyle

	return l
}

// promptID tells a finished prompt apart when several are chained.
type promptID int

const (
	promptCourseName promptID = iota
	promptCourseDesc
	promptTaskName
	promptTaskDesc
	promptTaskDue
)

// promptDoneMsg carries the entered text. ok is false when the prompt was
// cancelled with esc.
type promptDoneMsg struct {
	id    promptID
	value string
	ok    bool
}

// promptModel is a single-line text prompt overlay.
type promptModel struct {
	id    promptID
	title string
	label string
	input textinput.Model
}

func newPrompt(id promptID, title, label string) promptModel {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()

	return promptModel{
		id:    id,
		title: title,
		label: label,
		input: ti,
	}
}

func (p promptModel) Update(msg tea.Msg) (promptModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := p.input.Value()
			id := p.id
			return p, func() tea.Msg { return promptDoneMsg{id: id, value: value, ok: true} }
		case "esc":
			id := p.id
			return p, func() tea.Msg { return promptDoneMsg{id: id, ok: false} }
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p promptModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(p.label))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("enter", "ok") + " • " + FormatKey("esc", "cancel")))

	return boxStyle.Render(b.String())
}

// confirmDoneMsg reports the outcome of a confirmation dialog.
type confirmDoneMsg struct {
	confirmed bool
}

// confirmDialog is a yes/no confirmation overlay. No is preselected so that
// a stray enter never destroys data.
type confirmDialog struct {
	title   string
	message string
	yes     bool
}

func newConfirmDialog(title, message string) confirmDialog {
	return confirmDialog{
		title:   title,
		message: message,
	}
}

func (d confirmDialog) Update(msg tea.Msg) (confirmDialog, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h":
			d.yes = true
		case "right", "l":
			d.yes = false
		case "y":
			return d, func() tea.Msg { return confirmDoneMsg{confirmed: true} }
		case "n", "esc":
			return d, func() tea.Msg { return confirmDoneMsg{confirmed: false} }
		case "enter":
			confirmed := d.yes
			return d, func() tea.Msg { return confirmDoneMsg{confirmed: confirmed} }
		}
	}

	return d, nil
}

func (d confirmDialog) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.title))
	b.WriteString("\n\n")
	b.WriteString(d.message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render("Yes")
	noButton := inactiveButtonStyle.Render("No")
	if d.yes {
		yesButton = activeButtonStyle.Render("Yes")
	} else {
		noButton = activeButtonStyle.Render("No")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "navigate") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("esc", "cancel")))

	return boxStyle.Render(b.String())
}
