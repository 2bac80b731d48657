// Package store owns the single-file SQLite database of the journal.
//
// It exposes two repositories over one lazily opened handle:
//   - [EntryRepository] keeps one journal entry per calendar day, keyed by
//     the entry's "YYYY-MM-DD" date key, with upsert, point, range, paged
//     and filtered reads.
//   - [SecretRepository] keeps the single local-access PIN hash.
//
// The database is opened on the first repository call, not at construction.
// An open failure is remembered: every later call on the same [Storages]
// returns [ErrStorageUnavailable] without retrying.
package store
