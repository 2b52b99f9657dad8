package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"coursetrack/internal/config"
	"coursetrack/internal/logger"
	"coursetrack/internal/repository/sqlite"
	"coursetrack/internal/service"
	"coursetrack/internal/session"
	"coursetrack/internal/ui"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := sqlite.Connect(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	courseRepo := sqlite.NewCourseRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)
	sessionStore := session.NewFileStore(cfg.Session.Path)

	authService := service.NewAuth(userRepo, sessionStore, logger)
	courseService := service.NewCourse(courseRepo, logger)
	taskService := service.NewTask(taskRepo, logger)

	app := ui.NewApp(authService, courseService, taskService, logger)

	logAppVersion()

	if _, err := tea.NewProgram(app).Run(); err != nil {
		logger.Fatal("failed to run program", "error", err)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Fprintf(os.Stderr, tmpl, buildVersion, buildDate, buildCommit)
}
