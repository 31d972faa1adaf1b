// Package services holds the core of MoodKeeper: the credential store
// (AuthService), the session manager (SessionManager) and the per-user
// check-in store (EntryService).
//
// Every service works against a kv.Store so it can run over SQLite, Redis
// or memory. Collections are persisted as one JSON value per key and always
// rewritten whole. Persisted data is decoded leniently: malformed records
// are repaired on load instead of being rejected.
package services
