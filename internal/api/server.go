// Package api serves the task tracker as a JSON HTTP API.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"daily-assistant/internal/service"
)

// Server wires the HTTP routes to the services.
type Server struct {
	echo     *echo.Echo
	tasks    *service.TaskService
	settings *service.SettingsService
}

func New(tasks *service.TaskService, settings *service.SettingsService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{echo: e, tasks: tasks, settings: settings}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.echo.GET("/tasks", s.listTasks)
	s.echo.POST("/tasks", s.createTask)
	s.echo.GET("/tasks/:id", s.getTask)
	s.echo.PUT("/tasks/:id", s.updateTask)
	s.echo.DELETE("/tasks/:id", s.deleteTask)
	s.echo.POST("/tasks/:id/toggle", s.toggleTask)
	s.echo.GET("/tasks/:id/reminders", s.listReminders)

	s.echo.POST("/reminders", s.createReminder)
	s.echo.DELETE("/reminders/:id", s.deleteReminder)

	s.echo.GET("/summary", s.summary)

	s.echo.GET("/settings", s.getSettings)
	s.echo.PATCH("/settings", s.updateSettings)
	s.echo.POST("/settings/notifications/toggle", s.toggleNotifications)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[info] http api listening on %s", addr)
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("[info] http api stopped")
	return nil
}
