package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// NotifierSpy is a Notifier that records every notification and optionally fails.
type NotifierSpy struct {
	notifications []catalog.Notification
	err           error
	mu            sync.Mutex
}

// NewNotifierSpy creates a NotifierSpy that succeeds.
func NewNotifierSpy() *NotifierSpy {
	return &NotifierSpy{}
}

// NewFailingNotifierSpy creates a NotifierSpy that records and then returns err.
func NewFailingNotifierSpy(err error) *NotifierSpy {
	return &NotifierSpy{err: err}
}

// Notify implements the Notifier interface for testing.
func (s *NotifierSpy) Notify(_ context.Context, notification catalog.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, notification)

	return s.err
}

// GetNotifications returns a copy of all recorded notifications in order.
func (s *NotifierSpy) GetNotifications() []catalog.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]catalog.Notification(nil), s.notifications...)
}

// Compile-time check to ensure NotifierSpy implements Notifier interface.
var _ catalog.Notifier = (*NotifierSpy)(nil)
