package chain

import (
	"fmt"
	"time"

	"golang.org/x/text/unicode/norm"
)

// TimestampLayout is the wall-clock format stored in chain files.
// Local time, second precision.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one record in the chain.
//
// Session is the number of the session that wrote the entry. It is
// omitted when zero so chains written by older tools round-trip
// byte-for-byte.
type Entry struct {
	Run       int    `json:"run"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Session   int    `json:"session,omitempty"`
}

// Append returns entries extended with the next entry in the sequence.
//
// The new entry's run number is len(entries)+1, keeping the run-number
// invariant by construction. The message is normalized to NFC so that
// equal-looking text compares equal after a round trip through disk.
//
// Append is pure: it never touches the filesystem.
func Append(entries []Entry, message string, now time.Time, session int) []Entry {
	e := Entry{
		Run:       len(entries) + 1,
		Timestamp: now.Format(TimestampLayout),
		Message:   norm.NFC.String(message),
		Session:   session,
	}
	return append(entries, e)
}

// Validate checks the run-number invariant: entry i has Run == i+1.
// Returns nil for the empty chain.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if e.Run != i+1 {
			return fmt.Errorf("entry at index %d has run %d, want %d", i, e.Run, i+1)
		}
	}
	return nil
}

// Tail returns the last n entries in chronological order.
// Returns the whole chain when n >= len(entries), nil when n <= 0.
func Tail(entries []Entry, n int) []Entry {
	if n <= 0 {
		return nil
	}
	if n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
