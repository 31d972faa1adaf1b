// Package client bootstraps local persistence for the MoodKeeper CLI.
//
// # Overview
//
// OpenStore turns a config.Config into a ready kv.Store:
//   - "sqlite": opens (and creates) the database file with the pure-Go
//     modernc.org/sqlite driver and applies the embedded goose migrations
//     (InitDatabase, RunMigrations).
//   - "redis": connects with go-redis and verifies the server with PING.
//   - "memory": a process-local store, nothing is persisted.
//
// # Error Handling
//
// Failures are wrapped around sentinel errors callers can match with
// errors.Is: ErrUnknownBackend, ErrUnavailable, ErrInvalidDatabase.
package client
