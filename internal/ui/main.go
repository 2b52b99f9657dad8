package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coursetrack/internal/model"
)

type focusArea int

const (
	focusCourses focusArea = iota
	focusTasks
	focusDetails
)

type mainMode int

const (
	modeBrowse mainMode = iota
	modePrompt
	modeConfirm
)

type deleteTarget int

const (
	deleteCourse deleteTarget = iota
	deleteTask
)

// mainModel is the course/task management screen. courseRows and taskRows
// are the explicit index→row mappings backing the two lists; both are
// rebuilt whenever the corresponding list reloads, and selection indices
// always refer to the current slice.
type mainModel struct {
	user    model.User
	courses CourseService
	tasks   TaskService

	courseRows []model.Course
	taskRows   []model.Task

	courseList list.Model
	taskList   list.Model

	// Detail selection. -1 means nothing selected. A selected task takes
	// precedence over a selected course when saving.
	selectedCourse int
	selectedTask   int

	nameInput   textinput.Model
	descInput   textinput.Model
	dueInput    textinput.Model
	detailFocus int
	dueEnabled  bool
	saveEnabled bool

	focus   focusArea
	mode    mainMode
	prompt  promptModel
	confirm confirmDialog

	// Pending state for prompt chains and delete confirmations.
	pendingName     string
	pendingDesc     string
	pendingDelete   deleteTarget
	pendingDeleteID int64
	pendingCourseID int64

	status string
	err    error

	width  int
	height int
}

func newMainModel(user model.User, courses CourseService, tasks TaskService, width, height int) mainModel {
	nameInput := textinput.New()
	nameInput.CharLimit = 128
	nameInput.Width = 30

	descInput := textinput.New()
	descInput.CharLimit = 256
	descInput.Width = 30

	dueInput := textinput.New()
	dueInput.Placeholder = "YYYY-MM-DD"
	dueInput.CharLimit = 32
	dueInput.Width = 30

	m := mainModel{
		user:           user,
		courses:        courses,
		tasks:          tasks,
		courseList:     newListModel("Courses"),
		taskList:       newListModel("Tasks"),
		selectedCourse: -1,
		selectedTask:   -1,
		nameInput:      nameInput,
		descInput:      descInput,
		dueInput:       dueInput,
		width:          width,
		height:         height,
	}
	m.resize()

	return m
}

func (m mainModel) Init() tea.Cmd {
	return loadCoursesCmd(m.courses, m.user.ID)
}

// Messages
type coursesLoadedMsg struct {
	courses []model.Course
}

type tasksLoadedMsg struct {
	courseID int64
	tasks    []model.Task
}

type courseAddedMsg struct{}

type courseDeletedMsg struct{}

type courseSavedMsg struct{}

type taskAddedMsg struct {
	courseID int64
}

type taskDeletedMsg struct {
	courseID int64
}

type taskSavedMsg struct {
	courseID int64
}

// Commands
func loadCoursesCmd(svc CourseService, userID int64) tea.Cmd {
	return func() tea.Msg {
		courses, err := svc.List(context.Background(), userID)
		if err != nil {
			return errMsg{err: err}
		}
		return coursesLoadedMsg{courses: courses}
	}
}

func loadTasksCmd(svc TaskService, courseID int64) tea.Cmd {
	return func() tea.Msg {
		tasks, err := svc.List(context.Background(), courseID)
		if err != nil {
			return errMsg{err: err}
		}
		return tasksLoadedMsg{courseID: courseID, tasks: tasks}
	}
}

func addCourseCmd(svc CourseService, userID int64, name, description string) tea.Cmd {
	return func() tea.Msg {
		if _, err := svc.Create(context.Background(), userID, name, description); err != nil {
			return errMsg{err: err}
		}
		return courseAddedMsg{}
	}
}

func deleteCourseCmd(svc CourseService, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Delete(context.Background(), id); err != nil {
			return errMsg{err: err}
		}
		return courseDeletedMsg{}
	}
}

func saveCourseCmd(svc CourseService, course model.Course) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Update(context.Background(), course); err != nil {
			return errMsg{err: err}
		}
		return courseSavedMsg{}
	}
}

func addTaskCmd(svc TaskService, courseID int64, name, description, dueDate string) tea.Cmd {
	return func() tea.Msg {
		if _, err := svc.Create(context.Background(), courseID, name, description, dueDate); err != nil {
			return errMsg{err: err}
		}
		return taskAddedMsg{courseID: courseID}
	}
}

func deleteTaskCmd(svc TaskService, id, courseID int64) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Delete(context.Background(), id); err != nil {
			return errMsg{err: err}
		}
		return taskDeletedMsg{courseID: courseID}
	}
}

func saveTaskCmd(svc TaskService, task model.Task) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Update(context.Background(), task); err != nil {
			return errMsg{err: err}
		}
		return taskSavedMsg{courseID: task.CourseID}
	}
}

func (m mainModel) Update(msg tea.Msg) (mainModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case coursesLoadedMsg:
		return m.handleCoursesLoaded(msg)

	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg)

	case courseAddedMsg:
		return m, loadCoursesCmd(m.courses, m.user.ID)

	case courseDeletedMsg:
		// Full screen reset, same as the initial state.
		m.selectedCourse = -1
		m.taskRows = nil
		m.taskList.SetItems([]list.Item{})
		m.clearDetails()
		return m, loadCoursesCmd(m.courses, m.user.ID)

	case courseSavedMsg:
		m.status = "Changes saved."
		return m, loadCoursesCmd(m.courses, m.user.ID)

	case taskAddedMsg:
		return m, loadTasksCmd(m.tasks, msg.courseID)

	case taskDeletedMsg:
		return m.reselectCourse(msg.courseID)

	case taskSavedMsg:
		m.status = "Changes saved."
		return m.reselectCourse(msg.courseID)

	case promptDoneMsg:
		return m.handlePromptDone(msg)

	case confirmDoneMsg:
		return m.handleConfirmDone(msg)
	}

	switch m.mode {
	case modePrompt:
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd

	case modeConfirm:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleBrowseKey(key)
	}

	return m, nil
}

func (m mainModel) handleBrowseKey(key tea.KeyMsg) (mainModel, tea.Cmd) {
	switch key.String() {
	case "tab":
		m.setFocus((m.focus + 1) % 3)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + 2) % 3)
		return m, nil

	case "ctrl+l":
		return m, func() tea.Msg { return logoutRequestedMsg{} }

	case "ctrl+s":
		return m.saveChanges()

	case "esc":
		// Clears the detail editor and the task selection; the course
		// selection survives.
		m.clearDetails()
		return m, nil
	}

	switch m.focus {
	case focusCourses, focusTasks:
		return m.handleListKey(key)
	default:
		return m.handleDetailKey(key)
	}
}

func (m mainModel) handleListKey(key tea.KeyMsg) (mainModel, tea.Cmd) {
	switch key.String() {
	case "a":
		if m.focus == focusCourses {
			m.prompt = newPrompt(promptCourseName, "Add Course", "Enter course name:")
			m.mode = modePrompt
			return m, textinput.Blink
		}
		// Adding a task needs a selected course.
		if m.selectedCourse < 0 || m.selectedCourse >= len(m.courseRows) {
			return m, nil
		}
		m.pendingCourseID = m.courseRows[m.selectedCourse].ID
		m.prompt = newPrompt(promptTaskName, "Add Task", "Enter task name:")
		m.mode = modePrompt
		return m, textinput.Blink

	case "d":
		if m.focus == focusCourses {
			idx := m.courseList.Index()
			if idx < 0 || idx >= len(m.courseRows) {
				return m, nil
			}
			m.pendingDelete = deleteCourse
			m.pendingDeleteID = m.courseRows[idx].ID
			m.confirm = newConfirmDialog("Confirm Delete", "Are you sure you want to delete this course and all its tasks?")
			m.mode = modeConfirm
			return m, nil
		}
		idx := m.taskList.Index()
		if idx < 0 || idx >= len(m.taskRows) {
			return m, nil
		}
		m.pendingDelete = deleteTask
		m.pendingDeleteID = m.taskRows[idx].ID
		m.pendingCourseID = m.taskRows[idx].CourseID
		m.confirm = newConfirmDialog("Confirm Delete", "Are you sure you want to delete this task?")
		m.mode = modeConfirm
		return m, nil

	case "enter":
		if m.focus == focusCourses {
			return m.selectCourse(m.courseList.Index())
		}
		return m.selectTask(m.taskList.Index())
	}

	var cmd tea.Cmd
	if m.focus == focusCourses {
		m.courseList, cmd = m.courseList.Update(key)
	} else {
		m.taskList, cmd = m.taskList.Update(key)
	}
	return m, cmd
}

func (m mainModel) handleDetailKey(key tea.KeyMsg) (mainModel, tea.Cmd) {
	switch key.String() {
	case "up", "down":
		step := 1
		if key.String() == "up" {
			step = 2
		}
		next := (m.detailFocus + step) % 3
		if next == 2 && !m.dueEnabled {
			next = (next + step) % 3
		}
		m.setDetailFocus(next)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	switch m.detailFocus {
	case 0:
		m.nameInput, cmd = m.nameInput.Update(key)
	case 1:
		m.descInput, cmd = m.descInput.Update(key)
	default:
		m.dueInput, cmd = m.dueInput.Update(key)
	}
	return m, cmd
}

func (m mainModel) handleCoursesLoaded(msg coursesLoadedMsg) (mainModel, tea.Cmd) {
	m.courseRows = msg.courses
	m.err = nil

	items := make([]list.Item, len(msg.courses))
	for i, c := range msg.courses {
		items[i] = listItem{id: c.ID, label: c.Name}
	}
	m.courseList.SetItems(items)

	if m.selectedCourse >= len(m.courseRows) {
		m.selectedCourse = -1
		m.clearDetails()
		return m, nil
	}

	if m.selectedCourse >= 0 {
		// Keep the selection live across a reload: refresh the details
		// from the reloaded row and its task list.
		course := m.courseRows[m.selectedCourse]
		m.showCourseDetails(course)
		return m, loadTasksCmd(m.tasks, course.ID)
	}

	return m, nil
}

func (m mainModel) handleTasksLoaded(msg tasksLoadedMsg) (mainModel, tea.Cmd) {
	m.taskRows = msg.tasks
	m.selectedTask = -1
	m.err = nil

	items := make([]list.Item, len(msg.tasks))
	for i, t := range msg.tasks {
		items[i] = listItem{id: t.ID, label: t.Name}
	}
	m.taskList.SetItems(items)

	return m, nil
}

func (m mainModel) handlePromptDone(msg promptDoneMsg) (mainModel, tea.Cmd) {
	m.mode = modeBrowse

	switch msg.id {
	case promptCourseName:
		// An empty or cancelled name cancels the whole operation.
		if !msg.ok || msg.value == "" {
			return m, nil
		}
		m.pendingName = msg.value
		m.prompt = newPrompt(promptCourseDesc, "Add Course Description", "Enter course description (optional):")
		m.mode = modePrompt
		return m, textinput.Blink

	case promptCourseDesc:
		desc := ""
		if msg.ok {
			desc = msg.value
		}
		return m, addCourseCmd(m.courses, m.user.ID, m.pendingName, desc)

	case promptTaskName:
		if !msg.ok || msg.value == "" {
			return m, nil
		}
		m.pendingName = msg.value
		m.prompt = newPrompt(promptTaskDesc, "Add Task Description", "Enter task description (optional):")
		m.mode = modePrompt
		return m, textinput.Blink

	case promptTaskDesc:
		m.pendingDesc = ""
		if msg.ok {
			m.pendingDesc = msg.value
		}
		m.prompt = newPrompt(promptTaskDue, "Add Task Due Date", "Enter due date (e.g., YYYY-MM-DD):")
		m.mode = modePrompt
		return m, textinput.Blink

	case promptTaskDue:
		due := ""
		if msg.ok {
			due = msg.value
		}
		return m, addTaskCmd(m.tasks, m.pendingCourseID, m.pendingName, m.pendingDesc, due)
	}

	return m, nil
}

func (m mainModel) handleConfirmDone(msg confirmDoneMsg) (mainModel, tea.Cmd) {
	m.mode = modeBrowse

	// A declined confirmation is a normal abort.
	if !msg.confirmed {
		return m, nil
	}

	if m.pendingDelete == deleteCourse {
		return m, deleteCourseCmd(m.courses, m.pendingDeleteID)
	}
	return m, deleteTaskCmd(m.tasks, m.pendingDeleteID, m.pendingCourseID)
}

func (m mainModel) selectCourse(idx int) (mainModel, tea.Cmd) {
	if idx < 0 || idx >= len(m.courseRows) {
		return m, nil
	}

	m.selectedCourse = idx
	m.selectedTask = -1
	m.err = nil

	course := m.courseRows[idx]
	m.showCourseDetails(course)

	return m, loadTasksCmd(m.tasks, course.ID)
}

func (m mainModel) selectTask(idx int) (mainModel, tea.Cmd) {
	if idx < 0 || idx >= len(m.taskRows) {
		return m, nil
	}

	m.selectedTask = idx
	m.err = nil

	task := m.taskRows[idx]
	m.nameInput.SetValue(task.Name)
	m.descInput.SetValue(task.Description)
	m.dueInput.SetValue(task.DueDate)
	m.dueEnabled = true
	m.saveEnabled = true
	m.setDetailFocus(0)

	return m, nil
}

// saveChanges writes the detail fields back. A selected task wins over a
// selected course.
func (m mainModel) saveChanges() (mainModel, tea.Cmd) {
	if !m.saveEnabled {
		return m, nil
	}

	name := m.nameInput.Value()
	desc := m.descInput.Value()
	due := m.dueInput.Value()

	if m.selectedTask >= 0 && m.selectedTask < len(m.taskRows) {
		task := m.taskRows[m.selectedTask]
		task.Name = name
		task.Description = desc
		task.DueDate = due
		return m, saveTaskCmd(m.tasks, task)
	}

	if m.selectedCourse >= 0 && m.selectedCourse < len(m.courseRows) {
		course := m.courseRows[m.selectedCourse]
		course.Name = name
		course.Description = desc
		return m, saveCourseCmd(m.courses, course)
	}

	return m, nil
}

// reselectCourse restores the course-selected state after a task mutation:
// details show the course again and its tasks reload.
func (m mainModel) reselectCourse(courseID int64) (mainModel, tea.Cmd) {
	m.selectedTask = -1
	if m.selectedCourse >= 0 && m.selectedCourse < len(m.courseRows) {
		m.showCourseDetails(m.courseRows[m.selectedCourse])
	}
	return m, loadTasksCmd(m.tasks, courseID)
}

func (m *mainModel) showCourseDetails(course model.Course) {
	m.nameInput.SetValue(course.Name)
	m.descInput.SetValue(course.Description)
	m.dueInput.SetValue("")
	m.dueEnabled = false
	m.saveEnabled = true
	m.setDetailFocus(0)
}

func (m *mainModel) clearDetails() {
	m.nameInput.SetValue("")
	m.descInput.SetValue("")
	m.dueInput.SetValue("")
	m.dueEnabled = false
	m.saveEnabled = false
	m.selectedTask = -1
	m.err = nil
	m.setDetailFocus(0)
}

func (m *mainModel) setFocus(focus focusArea) {
	m.focus = focus
	if focus == focusDetails {
		m.setDetailFocus(m.detailFocus)
	} else {
		m.nameInput.Blur()
		m.descInput.Blur()
		m.dueInput.Blur()
	}
}

func (m *mainModel) setDetailFocus(idx int) {
	m.detailFocus = idx
	m.nameInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()

	if m.focus != focusDetails {
		return
	}
	switch idx {
	case 0:
		m.nameInput.Focus()
	case 1:
		m.descInput.Focus()
	default:
		m.dueInput.Focus()
	}
}

func (m *mainModel) resize() {
	columnWidth := m.width/3 - 4
	listHeight := m.height - 10
	if columnWidth < 20 {
		columnWidth = 20
	}
	if listHeight < 5 {
		listHeight = 5
	}
	m.courseList.SetSize(columnWidth, listHeight)
	m.taskList.SetSize(columnWidth, listHeight)
}

func (m mainModel) View() string {
	if m.mode == modePrompt {
		return m.overlay(m.prompt.View())
	}
	if m.mode == modeConfirm {
		return m.overlay(m.confirm.View())
	}

	header := titleStyle.Render("Task Manager") + "  " +
		subtitleStyle.Render(fmt.Sprintf("Welcome, %s!", m.user.Name))

	courses := m.renderBox(m.courseList.View(), focusCourses)
	tasks := m.renderBox(m.taskList.View(), focusTasks)
	details := m.renderBox(m.renderDetails(), focusDetails)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, courses, tasks, details)

	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, columns, footer)
}

func (m mainModel) renderBox(content string, area focusArea) string {
	if m.focus == area {
		return activeBoxStyle.Render(content)
	}
	return boxStyle.Render(content)
}

func (m mainModel) renderDetails() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Details"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Name:"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Description:"))
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Due Date (YYYY-MM-DD):"))
	b.WriteString("\n")
	if m.dueEnabled {
		b.WriteString(m.dueInput.View())
	} else {
		b.WriteString(disabledStyle.Render("(courses have no due date)"))
	}
	b.WriteString("\n\n")
	if m.saveEnabled {
		b.WriteString(activeButtonStyle.Render("Save: ctrl+s"))
	} else {
		b.WriteString(inactiveButtonStyle.Render("Save: ctrl+s"))
	}

	return b.String()
}

func (m mainModel) renderFooter() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render(detailErrorText(m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		FormatKey("tab", "switch panel") + " • " +
			FormatKey("enter", "select") + " • " +
			FormatKey("a", "add") + " • " +
			FormatKey("d", "delete") + " • " +
			FormatKey("ctrl+s", "save") + " • " +
			FormatKey("esc", "clear details") + " • " +
			FormatKey("ctrl+l", "logout") + " • " +
			FormatKey("ctrl+c", "quit")))

	return b.String()
}

func (m mainModel) overlay(content string) string {
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func detailErrorText(err error) string {
	if errors.Is(err, model.ErrEmptyField) {
		return "Name cannot be empty."
	}
	return err.Error()
}
