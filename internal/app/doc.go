// Package app is the composition root for the Perch application.
//
// # Overview
//
// This package wires configuration, logging, the API client, the
// account poller and the terminal UI into one running program. It owns
// no domain logic of its own; everything interesting lives in the
// packages it connects.
//
// # Startup
//
// Run initialises dependencies in order:
//
//  1. Load and validate ~/.config/perch/perch.toml
//  2. Configure the global zerolog logger (file or discard)
//  3. Load user preferences (theme, ascii mode) and the seen-link history
//  4. Build the rate-limited HTTP API client
//  5. Create the shared state.Store
//  6. Launch the account poller and the UI under one errgroup
//
// Configuration problems are fatal; unreadable preference or history
// files degrade to empty defaults with a logged warning, so a corrupt
// cache never blocks the browser from starting.
//
// # Background Poller
//
//	┌──────────────────────────────────────┐
//	│ pollAccount goroutine                │
//	│  ├─> client.Me()                     │
//	│  └─> store.Update()  (atomic)        │
//	│      └─> UI reads store.Snapshot()   │
//	└──────────────────────────────────────┘
//
// The poller refreshes the signed-in account (name, karma, unread
// count) on a fixed cadence, default one minute. Consecutive failures
// back off exponentially up to ten minutes; the store counts them so
// the UI can flag the session as offline. Signed-out sessions skip
// polling entirely.
//
// # Shutdown
//
// The UI goroutine cancels the shared context when it returns, which
// stops the poller and unblocks Wait. The seen-link history is saved
// after both goroutines have finished, win or lose.
//
// # Usage
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	err := app.Run(ctx, app.Options{
//		ConfigPath: "",          // default location
//		Target:     "/r/golang", // initial page
//		Version:    version,
//	})
package app
