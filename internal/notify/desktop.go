package notify

import (
	"context"
	"os/exec"
	"strconv"
	"time"
)

// Desktop sends alerts with notify-send.
type Desktop struct {
	AppName string
	Timeout time.Duration
	Icon    string

	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewDesktop creates a notify-send backend.
func NewDesktop(appName string) *Desktop {
	return &Desktop{
		AppName:  appName,
		Timeout:  10 * time.Second,
		Icon:     "appointment-soon-symbolic",
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// RequestPermission succeeds when notify-send is installed.
func (d *Desktop) RequestPermission(context.Context) (bool, error) {
	if _, err := d.lookPath("notify-send"); err != nil {
		return false, nil
	}
	return true, nil
}

func (d *Desktop) Send(ctx context.Context, msg Message) (*Handle, error) {
	args := d.args(msg)
	if err := d.run(ctx, "notify-send", args...); err != nil {
		return nil, err
	}
	return &Handle{ID: strconv.FormatInt(time.Now().UnixNano(), 36), Tag: msg.Tag}, nil
}

func (d *Desktop) args(msg Message) []string {
	args := []string{}

	if msg.Sticky {
		args = append(args, "-u", "critical")
	} else {
		args = append(args, "-u", "normal")
	}

	// Sticky alerts stay until dismissed.
	if d.Timeout > 0 && !msg.Sticky {
		args = append(args, "-t", strconv.Itoa(int(d.Timeout.Milliseconds())))
	}

	if d.Icon != "" {
		args = append(args, "-i", d.Icon)
	}

	if d.AppName != "" {
		args = append(args, "-a", d.AppName)
	}

	// Same tag replaces the previous bubble.
	if msg.Tag != "" {
		args = append(args, "-h", "string:x-canonical-private-synchronous:"+msg.Tag)
	}

	args = append(args, msg.Title)
	if msg.Body != "" {
		args = append(args, msg.Body)
	}
	return args
}
