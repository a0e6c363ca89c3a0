// Package session provides SQLite-backed tracking of relay sessions.
//
// A session groups the runs made from one terminal (keyed on the parent
// process ID, which changes per terminal or agent). The journal records
// when each session began, when it was last active, how many messages it
// wrote, and any notes attached to it.
//
// The journal is separate from the chain file: losing it costs history
// about who wrote what, never the chain itself.
//
// Database configuration follows the single-writer SQLite pattern:
// WAL mode, NORMAL synchronous, 5-second busy timeout, foreign keys on,
// and a connection pool capped at one to avoid SQLITE_BUSY.
package session
