// Package history tracks which links have been visited.
//
// # Overview
//
// Visited permalinks are kept as an ordered, deduplicating set and
// persisted one per line at ~/.local/share/perch/history.log. The UI
// uses membership to dim titles the reader has already opened.
//
// # Ordering
//
// Entries are ordered oldest to newest. Adding a link that is already
// present moves it to the back, so the file tail always holds the most
// recently visited links. Past capacity (200 by default, configurable)
// the oldest entries are evicted.
//
// # Reading
//
// Load reads only the last N lines of the file using a ring buffer:
//
//	1. Allocate a ring of size N
//	2. Scan the file once, storing each line at the wrapping index
//	3. Unwind the ring starting at the oldest surviving line
//
// One pass, O(N) memory regardless of file size. A missing file is an
// empty history; unreadable or oversized files degrade to empty rather
// than failing startup.
//
// # Persistence
//
// Save rewrites the whole file through a temp file in the same
// directory followed by a rename, so a crash mid-write never truncates
// the log. The file is chmodded 0o600 before the rename lands.
package history
