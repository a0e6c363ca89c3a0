package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the wall-clock format stored in the journal.
const TimeLayout = time.RFC3339

// Session is one journal row. NoteCount is populated by List.
type Session struct {
	ID           string `json:"id"`
	Number       int    `json:"number"`
	Started      string `json:"started"`
	LastActive   string `json:"last_active"`
	MessageCount int    `json:"message_count"`
	NoteCount    int    `json:"note_count,omitempty"`
}

// Note is a free-text annotation on a session.
type Note struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Created   string `json:"created"`
	Note      string `json:"note"`
}

// Stats summarizes the journal across all sessions.
type Stats struct {
	TotalSessions int    `json:"total_sessions"`
	TotalMessages int    `json:"total_messages"`
	FirstStarted  string `json:"first_started,omitempty"`
	LastStarted   string `json:"last_started,omitempty"`
}

// ErrNoSession is returned when an operation targets a session key that
// has never been started.
var ErrNoSession = errors.New("session not found")

// CurrentKey derives the session key for this process. The parent PID
// changes per terminal or agent session, so runs from the same shell
// share a key.
func CurrentKey() string {
	return fmt.Sprintf("session-%d", os.Getppid())
}

// Start begins or continues the session with the given key and returns
// its current state.
//
// An existing session gets last_active refreshed and message_count
// incremented. A new session is numbered after the highest number seen
// so far, starting at 1.
func (s *Store) Start(ctx context.Context, key string, now time.Time) (Session, error) {
	ts := now.Format(TimeLayout)

	res, err := s.db.ExecContext(ctx, `
		UPDATE sessions
		SET last_active = ?, message_count = message_count + 1
		WHERE id = ?
	`, ts, key)
	if err != nil {
		return Session{}, fmt.Errorf("start session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO sessions (id, number, started, last_active, message_count)
			VALUES (?, (SELECT COALESCE(MAX(number), 0) + 1 FROM sessions), ?, ?, 1)
		`, key, ts, ts)
		if err != nil {
			return Session{}, fmt.Errorf("start session: %w", err)
		}
	}

	return s.get(ctx, key)
}

func (s *Store) get(ctx context.Context, key string) (Session, error) {
	var sess Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, number, started, last_active, message_count
		FROM sessions WHERE id = ?
	`, key).Scan(&sess.ID, &sess.Number, &sess.Started, &sess.LastActive, &sess.MessageCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// AddNote attaches a note to the session with the given key.
// The session must already exist (Start it first).
func (s *Store) AddNote(ctx context.Context, key, text string, now time.Time) (Note, error) {
	if _, err := s.get(ctx, key); err != nil {
		return Note{}, err
	}
	note := Note{
		ID:        uuid.Must(uuid.NewV7()).String(),
		SessionID: key,
		Created:   now.Format(TimeLayout),
		Note:      text,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, session_id, created, note)
		VALUES (?, ?, ?, ?)
	`, note.ID, note.SessionID, note.Created, note.Note)
	if err != nil {
		return Note{}, fmt.Errorf("add note: %w", err)
	}
	return note, nil
}

// List returns all sessions in number order with note counts.
func (s *Store) List(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.number, s.started, s.last_active, s.message_count,
		       (SELECT COUNT(*) FROM notes n WHERE n.session_id = s.id)
		FROM sessions s
		ORDER BY s.number ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Number, &sess.Started,
			&sess.LastActive, &sess.MessageCount, &sess.NoteCount); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Notes returns the notes for one session, oldest first.
// UUIDv7 ids sort by creation time, so id order is insertion order.
func (s *Store) Notes(ctx context.Context, key string) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, created, note
		FROM notes WHERE session_id = ?
		ORDER BY id ASC
	`, key)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.SessionID, &n.Created, &n.Note); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Stats returns totals across the whole journal.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var first, last sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(message_count), 0),
		       MIN(started), MAX(started)
		FROM sessions
	`).Scan(&st.TotalSessions, &st.TotalMessages, &first, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("session stats: %w", err)
	}
	st.FirstStarted = first.String
	st.LastStarted = last.String
	return st, nil
}
