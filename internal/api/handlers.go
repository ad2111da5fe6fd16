package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"daily-assistant/internal/model"
	"daily-assistant/internal/service"
	"daily-assistant/internal/store"
)

type taskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

func (r taskRequest) input() service.TaskInput {
	return service.TaskInput{Title: r.Title, Description: r.Description, DueDate: r.DueDate}
}

type reminderRequest struct {
	TaskID  string    `json:"taskId"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

func (s *Server) listTasks(c echo.Context) error {
	filter, err := store.ParseFilter(c.QueryParam("filter"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	by, err := store.ParseSort(c.QueryParam("sort"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, s.tasks.ListTasks(filter, by))
}

func (s *Server) createTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	task, err := s.tasks.CreateTask(c.Request().Context(), req.input())
	if err != nil {
		return taskError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) getTask(c echo.Context) error {
	task, err := s.tasks.FindTask(c.Param("id"))
	if err != nil {
		return taskError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) updateTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	task, err := s.tasks.EditTask(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return taskError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c echo.Context) error {
	if _, err := s.tasks.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return taskError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) toggleTask(c echo.Context) error {
	task, err := s.tasks.ToggleTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return taskError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) listReminders(c echo.Context) error {
	task, err := s.tasks.FindTask(c.Param("id"))
	if err != nil {
		return taskError(err)
	}
	return c.JSON(http.StatusOK, s.tasks.Reminders(task.ID))
}

func (s *Server) createReminder(c echo.Context) error {
	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Time.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "time is required")
	}
	reminder, err := s.tasks.AddReminder(c.Request().Context(), req.TaskID, req.Time, req.Message)
	if err != nil {
		return taskError(err)
	}
	return c.JSON(http.StatusCreated, reminder)
}

func (s *Server) deleteReminder(c echo.Context) error {
	s.tasks.DeleteReminder(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) summary(c echo.Context) error {
	return c.JSON(http.StatusOK, s.tasks.Summary())
}

func (s *Server) getSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, s.settings.Get())
}

func (s *Server) updateSettings(c echo.Context) error {
	var patch model.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return err
	}
	settings, err := s.settings.Update(c.Request().Context(), patch)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, settings)
}

func (s *Server) toggleNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, s.settings.ToggleNotifications(c.Request().Context()))
}

func taskError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyTitle):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTaskNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAmbiguousID):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
