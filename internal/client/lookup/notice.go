package lookup

import (
	"sync"
	"time"
)

// NoticeTTL is how long a transient notice stays visible.
const NoticeTTL = 3 * time.Second

// Notices holds the single transient user-facing message. A new notice
// replaces the previous one; an expired notice reads as empty. There is no
// retry attached to a notice, it is informational only.
type Notices struct {
	mu       sync.Mutex
	msg      string
	deadline time.Time
	now      func() time.Time
}

func NewNotices() *Notices {
	return &Notices{now: time.Now}
}

// Show displays msg for NoticeTTL.
func (n *Notices) Show(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msg = msg
	n.deadline = n.now().Add(NoticeTTL)
}

// Current returns the active notice, or "" once it has auto-dismissed.
func (n *Notices) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.msg == "" || n.now().After(n.deadline) {
		return ""
	}
	return n.msg
}
