// Package state provides thread-safe session state for the Perch application.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing the
// logged-in account identity between the background poller and the UI. It
// acts as the coordination point where polling updates meet UI rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ client.Me()    │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  render header  │
//	└────────────────┘            └─────────────────┘
//
// The Store mediates between these two independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (defensive copying)
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest account identity
//   - Uses sync.RWMutex for concurrent access
//   - Single writer (poller), multiple readers (UI refresh loop)
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains account, unread count, timestamp, and error info
//   - Returned by value with defensive copies
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace identity, reset failure streak
//	store.Update(account, nil)
//	→ snapshot.Account = account (cloned)
//	→ snapshot.UnreadCount = account.InboxCount
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error case: Keep old identity, record error
//	store.Update(nil, err)
//	→ snapshot.Account = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// This ensures the header always shows the most recent successful
// identity while also surfacing polling failures. IsOffline reports
// true after two consecutive failures, which the status bar renders
// as an offline indicator.
//
// # Defensive Copying
//
// Both Update and Snapshot copy the account struct rather than sharing
// the pointer, and Snapshot wraps the error value, so neither side can
// mutate the other's view.
//
// # Design Rationale
//
// This package intentionally avoids channels, pub/sub, and versioning.
// A readers-writer lock around a small struct is sufficient for a
// single low-frequency writer and a UI that reads on its own tick.
package state
