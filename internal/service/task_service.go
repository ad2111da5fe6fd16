package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"daily-assistant/internal/classifier"
	"daily-assistant/internal/model"
	"daily-assistant/internal/store"
)

var (
	ErrEmptyTitle   = errors.New("title is required")
	ErrTaskNotFound = errors.New("task not found")
	ErrAmbiguousID  = errors.New("task id prefix matches several tasks")
)

// TaskInput represents data required to create or edit a task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// TaskService wraps task-related business logic on top of the store.
type TaskService struct {
	store *store.Store
	now   func() time.Time
	newID func() string
}

func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{
		store: st,
		now:   st.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// CreateTask classifies the input and adds it as a new pending task.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	description := strings.TrimSpace(input.Description)
	now := s.now()

	task := model.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Priority:    classifier.DeterminePriorityAt(title, description, input.DueDate, now),
		Category:    classifier.Categorize(title, description),
		CreatedAt:   now,
		DueDate:     input.DueDate,
	}

	s.store.Dispatch(ctx, store.AddTask{Task: task})
	return task, nil
}

// EditTask replaces the text and due date of a task and classifies it again.
// Completion state and creation time are kept.
func (s *TaskService) EditTask(ctx context.Context, id string, input TaskInput) (model.Task, error) {
	task, err := s.FindTask(id)
	if err != nil {
		return model.Task{}, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}

	task.Title = title
	task.Description = strings.TrimSpace(input.Description)
	task.DueDate = input.DueDate
	task.Category = classifier.Categorize(task.Title, task.Description)
	task.Priority = classifier.DeterminePriorityAt(task.Title, task.Description, task.DueDate, s.now())

	s.store.Dispatch(ctx, store.UpdateTask{Task: task})
	return task, nil
}

// ToggleTask flips the completion flag and returns the updated task.
func (s *TaskService) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	task, err := s.FindTask(id)
	if err != nil {
		return model.Task{}, err
	}
	state := s.store.Dispatch(ctx, store.ToggleTask{ID: task.ID})
	updated, _ := state.Task(task.ID)
	return updated, nil
}

// DeleteTask removes a task together with its reminders.
func (s *TaskService) DeleteTask(ctx context.Context, id string) (model.Task, error) {
	task, err := s.FindTask(id)
	if err != nil {
		return model.Task{}, err
	}
	s.store.Dispatch(ctx, store.DeleteTask{ID: task.ID})
	return task, nil
}

// AddReminder schedules a one-shot reminder for a task.
func (s *TaskService) AddReminder(ctx context.Context, taskID string, at time.Time, message string) (model.Reminder, error) {
	task, err := s.FindTask(taskID)
	if err != nil {
		return model.Reminder{}, err
	}
	reminder := model.Reminder{
		ID:      s.newID(),
		TaskID:  task.ID,
		Time:    at,
		Message: strings.TrimSpace(message),
	}
	s.store.Dispatch(ctx, store.AddReminder{Reminder: reminder})
	return reminder, nil
}

// DeleteReminder removes a reminder; unknown ids are ignored.
func (s *TaskService) DeleteReminder(ctx context.Context, id string) {
	s.store.Dispatch(ctx, store.DeleteReminder{ID: id})
}

// ListTasks returns tasks filtered and sorted for display.
func (s *TaskService) ListTasks(filter store.Filter, by store.SortBy) []model.Task {
	return store.Query(s.store.State().Tasks, filter, by)
}

// FindTask looks a task up by full id or by a unique id prefix.
func (s *TaskService) FindTask(id string) (model.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Task{}, ErrTaskNotFound
	}

	state := s.store.State()
	if task, ok := state.Task(id); ok {
		return task, nil
	}

	var found []model.Task
	for _, task := range state.Tasks {
		if strings.HasPrefix(task.ID, id) {
			found = append(found, task)
		}
	}
	switch len(found) {
	case 0:
		return model.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	case 1:
		return found[0], nil
	default:
		return model.Task{}, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
}

// Summary returns the current daily summary.
func (s *TaskService) Summary() model.DailySummary {
	return s.store.Summary()
}

// Reminders returns the reminders attached to a task.
func (s *TaskService) Reminders(taskID string) []model.Reminder {
	return s.store.State().RemindersFor(taskID)
}
