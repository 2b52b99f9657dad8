package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coursetrack/internal/model"
)

// loginModel is the login/register screen: a name and an email field.
type loginModel struct {
	auth AuthService

	name  textinput.Model
	email textinput.Model
	focus int
	err   error

	width  int
	height int
}

func newLoginModel(auth AuthService) loginModel {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 64
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Width = 40

	return loginModel{
		auth:  auth,
		name:  name,
		email: email,
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func loginCmd(auth AuthService, name, email string) tea.Cmd {
	return func() tea.Msg {
		user, registered, err := auth.Login(context.Background(), name, email)
		if err != nil {
			return errMsg{err: err}
		}
		return loginSuccessfulMsg{user: user, registered: registered}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.name.Focus()
				m.email.Blur()
			} else {
				m.name.Blur()
				m.email.Focus()
			}
			return m, textinput.Blink

		case "enter":
			m.err = nil
			return m, loginCmd(m.auth, m.name.Value(), m.email.Value())
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.email, cmd = m.email.Update(msg)
	}
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Task Manager"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Welcome! Log in or register to continue."))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Name:"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Email:"))
	b.WriteString("\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(loginErrorText(m.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(FormatKey("enter", "login / register") + " • " + FormatKey("tab", "switch field") + " • " + FormatKey("ctrl+c", "quit")))

	form := boxStyle.Render(b.String())
	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

func loginErrorText(err error) string {
	if errors.Is(err, model.ErrEmptyField) {
		return "Name and Email cannot be empty."
	}
	return err.Error()
}
