package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relay/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func testClock() *testutil.FixedClock {
	start := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	return testutil.NewFixedClock(start, time.Minute)
}

func TestStartCreatesSession(t *testing.T) {
	store := openTestStore(t)
	clock := testClock()

	sess, err := store.Start(context.Background(), "session-100", clock.Now())
	require.NoError(t, err)

	assert.Equal(t, "session-100", sess.ID)
	assert.Equal(t, 1, sess.Number)
	assert.Equal(t, 1, sess.MessageCount)
	assert.Equal(t, sess.Started, sess.LastActive)
}

func TestStartSameKeyContinuesSession(t *testing.T) {
	store := openTestStore(t)
	clock := testClock()
	ctx := context.Background()

	first, err := store.Start(ctx, "session-100", clock.Now())
	require.NoError(t, err)
	second, err := store.Start(ctx, "session-100", clock.Now())
	require.NoError(t, err)

	assert.Equal(t, first.Number, second.Number)
	assert.Equal(t, 2, second.MessageCount)
	assert.Equal(t, first.Started, second.Started)
	assert.NotEqual(t, second.Started, second.LastActive)

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestStartSecondKeyGetsNextNumber(t *testing.T) {
	store := openTestStore(t)
	clock := testClock()
	ctx := context.Background()

	_, err := store.Start(ctx, "session-100", clock.Now())
	require.NoError(t, err)
	second, err := store.Start(ctx, "session-200", clock.Now())
	require.NoError(t, err)

	assert.Equal(t, 2, second.Number)
}

func TestAddNoteUnknownSession(t *testing.T) {
	store := openTestStore(t)

	_, err := store.AddNote(context.Background(), "session-999", "hello", time.Now())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestNotesReturnedOldestFirst(t *testing.T) {
	store := openTestStore(t)
	clock := testClock()
	ctx := context.Background()

	_, err := store.Start(ctx, "session-100", clock.Now())
	require.NoError(t, err)

	_, err = store.AddNote(ctx, "session-100", "first", clock.Now())
	require.NoError(t, err)
	_, err = store.AddNote(ctx, "session-100", "second", clock.Now())
	require.NoError(t, err)

	notes, err := store.Notes(ctx, "session-100")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Note)
	assert.Equal(t, "second", notes[1].Note)
}

func TestListIncludesNoteCounts(t *testing.T) {
	store := openTestStore(t)
	clock := testClock()
	ctx := context.Background()

	_, err := store.Start(ctx, "session-100", clock.Now())
	require.NoError(t, err)
	_, err = store.AddNote(ctx, "session-100", "a note", clock.Now())
	require.NoError(t, err)

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].NoteCount)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	clock := testClock()
	ctx := context.Background()

	_, err := store.Start(ctx, "session-100", clock.Now())
	require.NoError(t, err)
	_, err = store.Start(ctx, "session-100", clock.Now())
	require.NoError(t, err)
	_, err = store.Start(ctx, "session-200", clock.Now())
	require.NoError(t, err)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 3, stats.TotalMessages)
	assert.NotEmpty(t, stats.FirstStarted)
	assert.NotEmpty(t, stats.LastStarted)
}

func TestStatsEmptyJournal(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0, stats.TotalMessages)
	assert.Empty(t, stats.FirstStarted)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.Start(context.Background(), "session-100", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	sessions, err := reopened.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestCurrentKeyStable(t *testing.T) {
	assert.Equal(t, CurrentKey(), CurrentKey())
	assert.Contains(t, CurrentKey(), "session-")
}
