// Package session binds the ground-truth log, the cursor, and the overlay
// behind one consistency boundary per session key. A Session serializes every
// operation with its own mutex; stores can be in-memory, JSONL files, or a
// SQLite database, and all three expose the same Store interface.
package session
