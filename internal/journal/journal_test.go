package journal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestBeginEnd_Success(t *testing.T) {
	j := openTestJournal(t)
	runID := NewRunID()

	id := j.Begin(runID, "profile")
	require.NotZero(t, id)
	j.End(id, nil)

	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, runID, entries[0].RunID)
	assert.Equal(t, "profile", entries[0].Stage)
	assert.Equal(t, "ok", entries[0].Outcome)
	assert.Empty(t, entries[0].Error)
	assert.False(t, entries[0].StartedAt.IsZero())
	assert.False(t, entries[0].FinishedAt.IsZero())
}

func TestBeginEnd_Failure(t *testing.T) {
	j := openTestJournal(t)

	id := j.Begin(NewRunID(), "billing")
	j.End(id, errors.New("backend error 400"))

	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Outcome)
	assert.Contains(t, entries[0].Error, "backend error 400")
}

func TestRecent_NewestFirstAndLimited(t *testing.T) {
	j := openTestJournal(t)
	runID := NewRunID()
	for _, stage := range []string{"profile", "billing", "analysis"} {
		j.End(j.Begin(runID, stage), nil)
	}

	entries, err := j.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "analysis", entries[0].Stage)
	assert.Equal(t, "billing", entries[1].Stage)
}

func TestNilJournal_IsSafe(t *testing.T) {
	var j *Journal
	id := j.Begin("run", "profile")
	assert.Zero(t, id)
	j.End(id, nil)
	entries, err := j.Recent(5)
	assert.NoError(t, err)
	assert.Nil(t, entries)
	assert.NoError(t, j.Close())
}
