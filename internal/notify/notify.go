// Package notify delivers user-facing alerts through a pluggable backend and
// tracks whether the user allowed them.
package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Message is a single alert.
type Message struct {
	Title string
	Body  string
	// Tag groups alerts of the same kind so backends can replace them.
	Tag string
	// Sticky asks the backend to keep the alert until dismissed.
	Sticky bool
}

// Handle identifies a delivered alert.
type Handle struct {
	ID  string
	Tag string
}

// Notifier is a delivery backend.
type Notifier interface {
	// RequestPermission asks the platform for permission to send alerts.
	RequestPermission(ctx context.Context) (bool, error)
	// Send delivers msg. A nil handle with a nil error means the backend
	// dropped the alert.
	Send(ctx context.Context, msg Message) (*Handle, error)
}

// Permission mirrors the platform permission state.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Gate wraps a Notifier and only lets alerts through once permission was
// granted. Its methods never return errors; failures are logged.
type Gate struct {
	mu         sync.Mutex
	backend    Notifier
	permission Permission
}

// NewGate returns a gate around backend. A nil backend is unsupported.
func NewGate(backend Notifier) *Gate {
	return &Gate{backend: backend, permission: PermissionDefault}
}

// Supported reports whether a backend is configured.
func (g *Gate) Supported() bool {
	return g.backend != nil
}

func (g *Gate) Permission() Permission {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.permission
}

// Granted reports whether alerts will be delivered.
func (g *Gate) Granted() bool {
	return g.Supported() && g.Permission() == PermissionGranted
}

// RequestPermission asks the backend and records the answer.
func (g *Gate) RequestPermission(ctx context.Context) bool {
	if !g.Supported() {
		return false
	}
	ok, err := g.backend.RequestPermission(ctx)
	if err != nil {
		log.Printf("request notification permission: %v", err)
		ok = false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if ok {
		g.permission = PermissionGranted
	} else {
		g.permission = PermissionDenied
	}
	return ok
}

// Send delivers msg when permitted and returns its handle, or nil.
func (g *Gate) Send(ctx context.Context, msg Message) *Handle {
	if !g.Granted() {
		return nil
	}
	h, err := g.backend.Send(ctx, msg)
	if err != nil {
		log.Printf("send notification %q: %v", msg.Title, err)
		return nil
	}
	return h
}

// TaskReminder sends the alert used for reminders and overdue tasks.
func (g *Gate) TaskReminder(ctx context.Context, taskTitle, message string) *Handle {
	body := message
	if body == "" {
		body = "Don't forget: " + taskTitle
	}
	return g.Send(ctx, Message{
		Title:  "Task Reminder",
		Body:   body,
		Tag:    "task-reminder",
		Sticky: true,
	})
}

// DailySummary sends the end-of-day completion report.
func (g *Gate) DailySummary(ctx context.Context, completed, total int) *Handle {
	return g.Send(ctx, Message{
		Title: "Daily Summary",
		Body:  fmt.Sprintf("Completed %d of %d tasks today", completed, total),
		Tag:   "daily-summary",
	})
}

// Discard is a backend that never gets permission.
type Discard struct{}

func (Discard) RequestPermission(context.Context) (bool, error) { return false, nil }

func (Discard) Send(context.Context, Message) (*Handle, error) { return nil, nil }
