// Package cli provides the interactive MoodKeeper terminal client.
//
// It wires configuration, the selected storage backend and the core
// services behind a small REPL. On start the persisted session is
// validated; a valid one skips the login prompt.
//
// Key features:
//   - Register / Login / Logout against the local credential store
//   - Record, edit and delete daily check-ins
//   - List and search the journal, show the last seven days with averages
//   - Export everything to a JSON file, or clear all check-ins
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
