package bot

import (
	"sync"
	"time"
)

// revertScheduler arms at most one pending menu revert per user.
// Scheduling replaces a pending revert and any user-initiated render
// cancels it, so a late timer never overwrites a newer view.
type revertScheduler struct {
	mu     sync.Mutex
	timers map[int64]*time.Timer
}

func newRevertScheduler() *revertScheduler {
	return &revertScheduler{timers: make(map[int64]*time.Timer)}
}

// Schedule arms fn to run after d, replacing any pending revert for userID.
func (r *revertScheduler) Schedule(userID int64, d time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[userID]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		r.mu.Lock()
		if r.timers[userID] == t {
			delete(r.timers, userID)
		}
		r.mu.Unlock()
		fn()
	})
	r.timers[userID] = t
}

// Cancel drops any pending revert for userID.
func (r *revertScheduler) Cancel(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[userID]; ok {
		t.Stop()
		delete(r.timers, userID)
	}
}
