package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON_NotFound(t *testing.T) {
	s := New(t.TempDir())
	var v map[string]any
	err := s.ReadJSON(Profile, &v)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteReadJSON_Roundtrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "data")) // dir created lazily

	in := map[string]any{"name": "Blog", "budget_inr_per_month": float64(5000)}
	require.NoError(t, s.WriteJSON(Profile, in))

	var out map[string]any
	require.NoError(t, s.ReadJSON(Profile, &out))
	assert.Equal(t, in, out)
}

func TestWriteJSON_OverwritesWholesale(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.WriteJSON(Billing, []string{"a", "b", "c"}))
	require.NoError(t, s.WriteJSON(Billing, []string{"z"}))

	var out []string
	require.NoError(t, s.ReadJSON(Billing, &out))
	assert.Equal(t, []string{"z"}, out)
}

func TestWriteJSON_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.WriteJSON(Report, map[string]string{"k": "v"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cost_optimization_report.json", entries[0].Name())
}

func TestTextDocuments(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.ReadText(Description)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.WriteText(Description, "A blog with 10k monthly users"))
	text, err := s.ReadText(Description)
	require.NoError(t, err)
	assert.Equal(t, "A blog with 10k monthly users", text)
	assert.True(t, s.Exists(Description))
}

func TestPath_KnownAndUnknownNames(t *testing.T) {
	s := New("data")
	assert.Equal(t, filepath.Join("data", "project_profile.json"), s.Path(Profile))
	assert.Equal(t, filepath.Join("data", "scratch.json"), s.Path("scratch"))
}
