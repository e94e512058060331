// Package ui renders browseable listings, comment threads, the inbox,
// and the subscription list in the terminal.
//
// # Architecture Overview
//
// The package is a single bubbletea Model. Every state change flows
// through Update: key events, finished background fetches, loader and
// flash timers, and the once-a-second account snapshot pick-up. View
// is a pure assembly of rows cached by drawContent, so resizes and
// cursor moves re-render without touching the network.
//
// # Package Structure
//
//   - app.go: the Model, Update loop, page stack, actions, and loading
//   - page.go: the window packing algorithm and shared row plumbing
//   - subreddit.go, submission.go, subscription.go, inbox.go: one
//     renderer and key handler per view
//   - header.go: title bar, order banner, and footer text
//   - theme.go: named color themes compiled into lipgloss styles
//   - keys.go: the key map and its config-file override merge
//   - modal.go, help.go, menu.go, prompt.go: focused overlays
//   - exec.go: editor and pager handoff for composing and reading
//   - status.go: the notice line and the delayed loading animation
//
// # Window Packing
//
// drawContent walks items from the navigator's page index, giving each
// a subwindow of up to its preferred height with one blank row between
// items. The walk runs top-down, or bottom-up when the navigator is
// inverted; the final item clips to whatever rows remain. An inverted
// page whose items run out before the top of the screen flips back to
// normal orientation and packs again.
//
// # Background Work
//
// Network calls never run on the update loop. Page builds, listing
// extends, and stub expansions run as commands carrying the loader
// sequence number; answers from superseded fetches are dropped. The
// editor and pager suspend the program with tea.ExecProcess and the
// result comes back as a message.
//
// # Usage
//
//	err := ui.Run(ctx, ui.Options{
//		Client:  client,
//		Store:   store,
//		Config:  cfg,
//		History: hist,
//	})
package ui
