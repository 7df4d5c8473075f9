package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Toast is a transient notification. Each toast dismisses itself after the
// center's fixed TTL, on a timer independent of every other toast.
type Toast struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Level     string    `json:"level"` // "error" or "success"
	ExpiresAt time.Time `json:"expires_at"`
}

// ToastCenter holds the currently visible notifications.
type ToastCenter struct {
	mu     sync.Mutex
	ttl    time.Duration
	active []Toast
	now    func() time.Time
}

func NewToastCenter(ttl time.Duration) *ToastCenter {
	return &ToastCenter{ttl: ttl, now: time.Now}
}

// Error pushes an error notification.
func (tc *ToastCenter) Error(message string) Toast {
	return tc.push("error", message)
}

// Success pushes a success notification.
func (tc *ToastCenter) Success(message string) Toast {
	return tc.push("success", message)
}

func (tc *ToastCenter) push(level, message string) Toast {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	t := Toast{
		ID:        uuid.New(),
		Message:   message,
		Level:     level,
		ExpiresAt: tc.now().Add(tc.ttl),
	}
	tc.active = append(tc.active, t)
	return t
}

// Active returns the not-yet-expired notifications, pruning the rest.
func (tc *ToastCenter) Active() []Toast {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	now := tc.now()
	kept := tc.active[:0]
	for _, t := range tc.active {
		if t.ExpiresAt.After(now) {
			kept = append(kept, t)
		}
	}
	tc.active = kept
	return append([]Toast(nil), kept...)
}
