package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/seaward/perch/internal/reddit"
)

// Snapshot represents the latest identity data available to the UI.
type Snapshot struct {
	Account             *reddit.Account
	UnreadCount         int
	FetchedAt           time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored identity. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(account *reddit.Account, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.FetchedAt = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Account = cloneAccount(account)
	s.snapshot.UnreadCount = 0
	if account != nil {
		s.snapshot.UnreadCount = account.InboxCount
	}
	s.snapshot.LastError = nil
	s.snapshot.FetchedAt = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Account = cloneAccount(s.snapshot.Account)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneAccount(a *reddit.Account) *reddit.Account {
	if a == nil {
		return nil
	}
	dup := *a
	return &dup
}
