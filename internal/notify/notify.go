// Package notify renders form notifications for a terminal host.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Console prints one line per notification and mirrors it to the log.
type Console struct {
	out    io.Writer
	logger *logrus.Logger
}

func NewConsole(out io.Writer, logger *logrus.Logger) *Console {
	return &Console{out: out, logger: logger}
}

func (c *Console) Success(message string) {
	fmt.Fprintf(c.out, "✓ %s\n", message)
	c.logger.WithField("notification", message).Info("Notify.Success")
}

func (c *Console) Failure(message string) {
	fmt.Fprintf(c.out, "✗ %s\n", message)
	c.logger.WithField("notification", message).Warn("Notify.Failure")
}

type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
)

type Notification struct {
	Kind    Kind
	Message string
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *Recorder) Success(message string) {
	r.record(KindSuccess, message)
}

func (r *Recorder) Failure(message string) {
	r.record(KindFailure, message)
}

func (r *Recorder) record(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{Kind: kind, Message: message})
}

func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}

// Failures returns only the failure messages, oldest first.
func (r *Recorder) Failures() []string {
	var messages []string
	for _, n := range r.Notifications() {
		if n.Kind == KindFailure {
			messages = append(messages, n.Message)
		}
	}
	return messages
}
