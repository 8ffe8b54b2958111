package application

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

// DefaultNoticeExpiry is how long a notice stays queued when the caller does
// not choose an expiry.
const DefaultNoticeExpiry = 4 * time.Second

// NoticeSpec describes a notice to enqueue. A zero Expiry selects
// DefaultNoticeExpiry; Sticky keeps the notice until it is dismissed
// explicitly.
type NoticeSpec struct {
	Title       string
	Message     string
	Kind        domain.NoticeKind
	ActionLabel string
	Action      func()
	Expiry      time.Duration
	Sticky      bool
}

// NotificationCenter is the process-wide ordered queue of transient notices.
// Insertion order is display order. Each non-sticky notice owns an
// independent auto-dismiss timer that is released when the notice goes away,
// however it goes away.
type NotificationCenter struct {
	mu      sync.Mutex
	notices []domain.Notice
	timers  map[string]ports.TimerHandle
	sched   ports.Scheduler
	newID   func() string
}

func NewNotificationCenter(sched ports.Scheduler) *NotificationCenter {
	if sched == nil {
		sched = ports.SystemScheduler{}
	}

	return &NotificationCenter{
		timers: map[string]ports.TimerHandle{},
		sched:  sched,
		newID:  newNoticeID,
	}
}

// Notify appends a notice to the queue and schedules its auto-dismissal
// unless the spec is sticky. The returned id can be used to dismiss the
// notice early.
func (c *NotificationCenter) Notify(spec NoticeSpec) string {
	kind := spec.Kind
	if kind == "" {
		kind = domain.NoticeInfo
	}
	expiry := spec.Expiry
	if expiry == 0 {
		expiry = DefaultNoticeExpiry
	}

	id := c.newID()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.notices = append(c.notices, domain.Notice{
		ID:          id,
		Title:       spec.Title,
		Message:     spec.Message,
		Kind:        kind,
		ActionLabel: spec.ActionLabel,
		Action:      spec.Action,
	})

	if !spec.Sticky {
		c.timers[id] = c.sched.AfterFunc(expiry, func() {
			c.Dismiss(id)
		})
	}

	return id
}

// Dismiss removes the notice with the given id and cancels its pending
// timer. Dismissing an unknown or already removed id is a no-op.
func (c *NotificationCenter) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.notices {
		if c.notices[i].ID == id {
			c.notices = append(c.notices[:i], c.notices[i+1:]...)
			break
		}
	}

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
}

// Notices returns the queued notices in display order.
func (c *NotificationCenter) Notices() []domain.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

func (c *NotificationCenter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.notices)
}

// newNoticeID prefers a cryptographically random UUID and degrades to a
// pseudo-random id when the runtime cannot supply entropy.
func newNoticeID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	return fmt.Sprintf("notice-%d-%08x", time.Now().UnixNano(), rand.Uint32())
}
