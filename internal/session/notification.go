package session

import (
	"sync"
	"time"
)

const defaultNotificationTTL = 5 * time.Second

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is one ephemeral user-facing message. Nothing here is
// persisted; the whole queue dies with the process.
type Notification struct {
	ID       int64
	Title    string
	Message  string
	Severity Severity

	onClose func()
}

type NotificationOption func(*NotificationCenter)

// WithTTL overrides the auto-dismiss delay. Tests shrink it.
func WithTTL(ttl time.Duration) NotificationOption {
	return func(center *NotificationCenter) {
		center.ttl = ttl
	}
}

// WithSink registers a callback invoked for every added notification, so a
// terminal frontend can render toasts as they happen.
func WithSink(sink func(Notification)) NotificationOption {
	return func(center *NotificationCenter) {
		center.sink = sink
	}
}

// NotificationCenter is an append-only, time-expiring queue of user-facing
// messages. Every notification is dropped after the TTL or on explicit
// dismissal, whichever comes first.
type NotificationCenter struct {
	mu            sync.Mutex
	ttl           time.Duration
	nextID        int64
	notifications []Notification
	timers        map[int64]*time.Timer
	sink          func(Notification)
}

func NewNotificationCenter(opts ...NotificationOption) *NotificationCenter {
	center := &NotificationCenter{
		ttl:    defaultNotificationTTL,
		timers: map[int64]*time.Timer{},
	}
	for _, opt := range opts {
		opt(center)
	}
	return center
}

// Add appends a notification and schedules its removal. Returns the assigned
// id, a process-wide monotonically increasing value.
func (center *NotificationCenter) Add(title, message string, severity Severity) int64 {
	return center.AddWithClose(title, message, severity, nil)
}

// AddWithClose is Add with a callback fired once when the notification goes
// away, by timer or by dismissal.
func (center *NotificationCenter) AddWithClose(title, message string, severity Severity, onClose func()) int64 {
	center.mu.Lock()
	center.nextID++
	id := center.nextID
	notification := Notification{
		ID:       id,
		Title:    title,
		Message:  message,
		Severity: severity,
		onClose:  onClose,
	}
	center.notifications = append(center.notifications, notification)
	center.timers[id] = time.AfterFunc(center.ttl, func() {
		center.Remove(id)
	})
	sink := center.sink
	center.mu.Unlock()

	if sink != nil {
		sink(notification)
	}
	return id
}

// Remove dismisses a notification by id. Removing an id that is already gone
// is a no-op, so the expiry timer and an explicit dismissal never conflict.
func (center *NotificationCenter) Remove(id int64) {
	center.mu.Lock()
	if timer, ok := center.timers[id]; ok {
		timer.Stop()
		delete(center.timers, id)
	}
	var onClose func()
	filtered := center.notifications[:0]
	for _, n := range center.notifications {
		if n.ID == id {
			onClose = n.onClose
			continue
		}
		filtered = append(filtered, n)
	}
	center.notifications = filtered
	center.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

// List returns a snapshot of the live notifications in insertion order.
func (center *NotificationCenter) List() []Notification {
	center.mu.Lock()
	defer center.mu.Unlock()
	out := make([]Notification, len(center.notifications))
	copy(out, center.notifications)
	return out
}

// Close stops all pending expiry timers. Queued notifications stay listed;
// the process is going away anyway.
func (center *NotificationCenter) Close() {
	center.mu.Lock()
	defer center.mu.Unlock()
	for id, timer := range center.timers {
		timer.Stop()
		delete(center.timers, id)
	}
}
