// Package localstore provides the key-value backends the account store is
// persisted in.
//
// Three implementations satisfy Repository:
//
//   - SQLiteRepository keeps each key in a row of the "kv" table created by
//     the embedded goose migrations (see the storage package).
//   - FileRepository keeps all keys in one JSON document on disk, replaced
//     atomically on every write.
//   - MemoryRepository keeps keys in process memory.
//
// Values are opaque bytes; the accounts repository stores JSON text in them.
package localstore
