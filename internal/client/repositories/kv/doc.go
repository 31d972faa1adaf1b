// Package kv is the storage port of MoodKeeper: a string-keyed store of
// opaque values, each value being a whole JSON document.
//
// # Backends
//
//   - MemoryStore: process-local map, used by tests and the "memory" backend.
//   - SQLiteStore: a single kv table in a local SQLite database
//     (see internal/client/migrations).
//   - RedisStore: keys under a configurable prefix in a Redis database.
//
// # Contract
//
// Get returns (nil, nil) for an absent key. Set and Delete are whole-value
// operations, so there is never a partially written document. Update is an
// atomic read-modify-write of one key; an error returned by the callback
// aborts the update and is returned unchanged.
//
// Typical usage:
//
//	store := kv.NewSQLiteStore(db)
//	_ = store.Set(ctx, "k", []byte(`[]`))
//	v, _ := store.Get(ctx, "k")
//	_ = store.Update(ctx, "k", func(cur []byte) ([]byte, error) { return append(cur, ' '), nil })
package kv
