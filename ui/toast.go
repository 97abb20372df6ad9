package ui

import (
	"sync"
	"time"
)

// ToastTTL is how long a notification stays visible.
const ToastTTL = 3 * time.Second

const (
	ToastSuccess = "success"
	ToastError   = "error"
)

type Toast struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`

	expiresAt time.Time
}

// Notifier collects transient notifications for one session. Expired toasts
// drop out on the next read; nothing is ever surfaced twice past its TTL.
type Notifier struct {
	mu     sync.Mutex
	toasts []Toast
	now    func() time.Time
}

func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

func (n *Notifier) Push(message, kind string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, Toast{
		Message:   message,
		Kind:      kind,
		expiresAt: n.now().Add(ToastTTL),
	})
}

func (n *Notifier) Success(message string) { n.Push(message, ToastSuccess) }
func (n *Notifier) Error(message string)   { n.Push(message, ToastError) }

// Active returns the toasts still within their TTL and prunes the rest.
func (n *Notifier) Active() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	live := n.toasts[:0]
	for _, t := range n.toasts {
		if t.expiresAt.After(now) {
			live = append(live, t)
		}
	}
	n.toasts = live

	out := make([]Toast, len(live))
	copy(out, live)
	return out
}
