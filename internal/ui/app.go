package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"coursetrack/internal/logger"
	"coursetrack/internal/model"
)

// AuthService handles login, session resume and logout.
type AuthService interface {
	Login(ctx context.Context, name, email string) (model.User, bool, error)
	Resume(ctx context.Context) (model.User, error)
	Logout() error
}

// CourseService handles course CRUD scoped to a user.
type CourseService interface {
	List(ctx context.Context, userID int64) ([]model.Course, error)
	Get(ctx context.Context, id int64) (model.Course, error)
	Create(ctx context.Context, userID int64, name, description string) (model.Course, error)
	Update(ctx context.Context, course model.Course) error
	Delete(ctx context.Context, id int64) error
}

// TaskService handles task CRUD scoped to a course.
type TaskService interface {
	List(ctx context.Context, courseID int64) ([]model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	Create(ctx context.Context, courseID int64, name, description, dueDate string) (model.Task, error)
	Update(ctx context.Context, task model.Task) error
	Delete(ctx context.Context, id int64) error
}

// view enumerates which screen is live. Exactly one screen's state exists at
// a time; switching views builds the next screen from scratch.
type view int

const (
	viewLogin view = iota
	viewMain
)

// App owns the two-screen navigation state machine.
type App struct {
	view  view
	login loginModel
	main  mainModel

	auth    AuthService
	courses CourseService
	tasks   TaskService
	logger  *logger.Logger

	width  int
	height int
}

func NewApp(auth AuthService, courses CourseService, tasks TaskService, logger *logger.Logger) App {
	return App{
		view:    viewLogin,
		login:   newLoginModel(auth),
		auth:    auth,
		courses: courses,
		tasks:   tasks,
		logger:  logger,
	}
}

// Messages
type sessionResumedMsg struct {
	user model.User
}

type noSessionMsg struct{}

type loginSuccessfulMsg struct {
	user       model.User
	registered bool
}

type logoutRequestedMsg struct{}

type loggedOutMsg struct{}

type errMsg struct {
	err error
}

// Commands
func resumeSessionCmd(auth AuthService) tea.Cmd {
	return func() tea.Msg {
		user, err := auth.Resume(context.Background())
		if errors.Is(err, model.ErrNotFound) {
			return noSessionMsg{}
		}
		if err != nil {
			return errMsg{err: err}
		}
		return sessionResumedMsg{user: user}
	}
}

func logoutCmd(auth AuthService) tea.Cmd {
	return func() tea.Msg {
		if err := auth.Logout(); err != nil {
			return errMsg{err: err}
		}
		return loggedOutMsg{}
	}
}

// Init checks the persisted session before showing any screen.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		resumeSessionCmd(a.auth),
		a.login.Init(),
		tea.EnterAltScreen,
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case sessionResumedMsg:
		a.logger.Info("resumed session", "user_id", msg.user.ID)
		a.view = viewMain
		a.main = newMainModel(msg.user, a.courses, a.tasks, a.width, a.height)
		return a, a.main.Init()

	case noSessionMsg:
		return a, nil

	case loginSuccessfulMsg:
		a.view = viewMain
		a.main = newMainModel(msg.user, a.courses, a.tasks, a.width, a.height)
		if msg.registered {
			a.main.status = fmt.Sprintf("User %q registered successfully.", msg.user.Name)
		}
		return a, a.main.Init()

	case logoutRequestedMsg:
		return a, logoutCmd(a.auth)

	case loggedOutMsg:
		// Loaded course and task lists are discarded with the screen.
		a.view = viewLogin
		a.login = newLoginModel(a.auth)
		return a, a.login.Init()
	}

	switch a.view {
	case viewMain:
		var cmd tea.Cmd
		a.main, cmd = a.main.Update(msg)
		return a, cmd
	default:
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd
	}
}

func (a App) View() string {
	switch a.view {
	case viewMain:
		return a.main.View()
	default:
		return a.login.View()
	}
}
