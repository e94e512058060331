// Package content turns wire-format listings into navigable sequences
// of renderable items.
//
// # Overview
//
// Every page of the application displays one Content: a submission
// listing, a single submission with its comment tree, the subscription
// list, or the inbox. A Content is an indexable sequence of Items plus
// a Navigator that maps cursor movement onto that sequence. The ui
// package renders Items and never touches the API client directly.
//
// # Architecture
//
//	reddit.Client                  content                     ui
//	┌──────────────┐    ┌───────────────────────────┐   ┌───────────┐
//	│ Listing()    │───→│ SubredditContent           │   │           │
//	│ Comments()   │───→│ SubmissionContent          │──→│ Get(i, w) │
//	│ MoreChildren()│──→│   + Navigator              │   │ render    │
//	│ Inbox()      │───→│ InboxContent               │   │           │
//	│ Subscriptions│───→│ SubscriptionContent        │   │           │
//	└──────────────┘    └───────────────────────────┘   └───────────┘
//
// The client dependencies are narrow per-content interfaces (Lister,
// SubmissionLoader, InboxLister, SubscriptionLister) so tests can
// substitute fakes without a network.
//
// # Purity of Get
//
// Get(index, cols) is pure: it formats the already-loaded item at
// index for the given width, or returns ErrIndexOut. It never blocks
// on the network. Loading further rows is an explicit, separate step:
// the listing types implement Extender, and the ui runs Extend inside
// a command while a loading indicator spins. This split keeps the
// event loop responsive no matter how slow the remote service is.
//
// # The flat comment list
//
// A submission's comment forest is flattened in preorder, each item
// stamped with its nesting Level. Three item types occupy the list:
//
//   - ItemComment: a loaded comment.
//   - ItemMore: a stub standing in for unloaded children. Toggling it
//     fetches the children and splices them over the stub at its level.
//   - ItemHidden: a folded comment. It owns the exact Item slice it
//     replaced, so unfolding restores it byte for byte. Its Count is
//     the total number of comments the fold swallowed, counting More
//     stubs at their advertised size.
//
// Folding collects the selected comment plus every following item with
// a strictly greater Level; the first item at the same or a shallower
// level ends the span. This is safe because preorder flattening
// guarantees a node's whole subtree sits contiguously behind it.
//
// # Navigator
//
// The Navigator owns three pieces of state: PageIndex, CursorIndex and
// Inverted. The selected item is always PageIndex + Step*CursorIndex
// where Step is +1 (normal) or -1 (inverted). Normal orientation draws
// the page top-down starting at PageIndex; inverted draws bottom-up.
// Scrolling past the last drawn row flips the orientation instead of
// scrolling by one, which guarantees the selected item is never
// clipped at the screen edge. Validity of any candidate index is
// probed through the content's Get, so the Navigator itself needs no
// knowledge of how much has been loaded.
//
// # Lazy listings
//
// SubredditContent, SubscriptionContent and InboxContent pull rows
// page by page through an after-cursor. Construction probes the first
// page so that an empty listing fails fast with a typed error
// (ErrNoSubmissions, ErrNoSubscriptions, ErrNoMessages) the ui can
// show as a notice instead of an empty screen.
//
// # Formatting
//
// Item text is wrapped with display-cell awareness (go-runewidth) so
// double-width runes never overflow a row. Timestamps humanize into
// compact buckets ("5min", "2hr", "1month") with verbose forms for
// the submission header ("5 minutes ago"). Scores render as "{n} pts"
// with "-" while the service hides them.
package content
