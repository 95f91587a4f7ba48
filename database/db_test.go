package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annotation-tool/models"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournalRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, j.Record(models.SaveEvent{Username: "alice", Action: models.ActionInit, Rows: 2, CreatedAt: base}))
	require.NoError(t, j.Record(models.SaveEvent{Username: "bob", Action: models.ActionSave, Rows: 2, Completed: 1, CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, j.Record(models.SaveEvent{Username: "alice", Action: models.ActionSave, Rows: 2, Annotated: 1, CreatedAt: base.Add(2 * time.Minute)}))

	events, err := j.Recent("", 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "alice", events[0].Username)
	assert.Equal(t, models.ActionSave, events[0].Action)
	assert.Equal(t, "bob", events[1].Username)

	events, err = j.Recent("alice", 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].Annotated)
}

func TestJournalSetsTimestamp(t *testing.T) {
	j := openTestJournal(t)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	j.now = func() time.Time { return fixed }

	require.NoError(t, j.Record(models.SaveEvent{Username: "carol", Action: models.ActionSave}))

	events, err := j.Recent("carol", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, fixed.Equal(events[0].CreatedAt))
}
