// Package notify delivers short user-facing messages: toasts inside the
// terminal UI and, optionally, desktop notifications.
package notify

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/strrl/learning-journey/internal/logger"
)

// Variant distinguishes normal messages from failures
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

// Notification is a fire-and-forget message with a title and a description.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier delivers notifications. Delivery problems are the notifier's own
// business; callers never wait on or inspect the outcome.
type Notifier interface {
	Notify(n Notification)
}

// Toast is a notification shown in the UI until it expires
type Toast struct {
	Notification
	Expires time.Time
}

// Toaster keeps the most recent toast for the UI to render.
type Toaster struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	latest *Toast
}

// NewToaster returns a toaster whose toasts live for ttl
func NewToaster(ttl time.Duration) *Toaster {
	return &Toaster{ttl: ttl, now: time.Now}
}

func (t *Toaster) Notify(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest = &Toast{Notification: n, Expires: t.now().Add(t.ttl)}
}

// Current returns the live toast, if any
func (t *Toaster) Current() (Toast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest == nil || !t.now().Before(t.latest.Expires) {
		return Toast{}, false
	}
	return *t.latest, true
}

// Dismiss drops the current toast
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	t.latest = nil
	t.mu.Unlock()
}

// TTL returns how long toasts stay visible
func (t *Toaster) TTL() time.Duration {
	return t.ttl
}

var (
	defaultDesktopNotify = beeep.Notify
	desktopNotify        = defaultDesktopNotify
)

// Desktop sends notifications through the operating system.
type Desktop struct{}

func (Desktop) Notify(n Notification) {
	log := logger.ComponentLogger("notify")
	// Empty icon lets beeep pick the platform default.
	if err := desktopNotify(n.Title, n.Description, ""); err != nil {
		log.Warn("desktop notification failed", "title", n.Title, "error", err)
	}
}

// Log records notifications in the log file.
type Log struct{}

func (Log) Notify(n Notification) {
	log := logger.ComponentLogger("notify")
	if n.Variant == VariantDestructive {
		log.Warn(n.Title, "description", n.Description)
		return
	}
	log.Info(n.Title, "description", n.Description)
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}

// Recorder remembers every notification, for tests and the non-interactive commands.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
}

// Sent returns the notifications received so far
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}
