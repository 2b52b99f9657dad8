package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coursetrack/internal/model"
)

func typeString(t *testing.T, m loginModel, s string) loginModel {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestLogin_Submit(t *testing.T) {
	auth := &MockAuthService{}
	m := newLoginModel(auth)

	m = typeString(t, m, "Ada")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeString(t, m, "ada@example.com")

	auth.On("Login", mock.Anything, "Ada", "ada@example.com").
		Return(model.User{ID: 1, Name: "Ada", Email: "ada@example.com"}, true, nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	login, ok := msg.(loginSuccessfulMsg)
	require.True(t, ok)
	assert.Equal(t, int64(1), login.user.ID)
	assert.True(t, login.registered)
	auth.AssertExpectations(t)
}

func TestLogin_EmptyFieldsShowBlockingError(t *testing.T) {
	auth := &MockAuthService{}
	m := newLoginModel(auth)

	auth.On("Login", mock.Anything, "", "").
		Return(model.User{}, false, model.ErrEmptyField)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd())

	assert.ErrorIs(t, m.err, model.ErrEmptyField)
	assert.Contains(t, m.View(), "Name and Email cannot be empty.")
}

func TestLogin_ErrorClearedOnRetry(t *testing.T) {
	auth := &MockAuthService{}
	m := newLoginModel(auth)
	m.err = model.ErrEmptyField

	auth.On("Login", mock.Anything, "", "").
		Return(model.User{ID: 1}, false, nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NoError(t, m.err)
}
