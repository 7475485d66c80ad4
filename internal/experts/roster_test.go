package experts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRoster(t *testing.T) {
	roster := Default()
	require.Len(t, roster, 20)
	seen := make(map[int]bool, len(roster))
	for _, e := range roster {
		require.NotEmpty(t, e.Name)
		require.Positive(t, e.EntryID)
		require.False(t, seen[e.EntryID], "duplicate entry id %d", e.EntryID)
		seen[e.EntryID] = true
	}
}

func TestResolve(t *testing.T) {
	roster := Roster{
		{Name: "FPL Focal", EntryID: 200},
		{Name: "Ben Crellin", EntryID: 6586},
	}

	t.Run("CaseInsensitiveName", func(t *testing.T) {
		e, ok := roster.Resolve("fpl focal")
		require.True(t, ok)
		require.Equal(t, 200, e.EntryID)
	})

	t.Run("KnownID", func(t *testing.T) {
		e, ok := roster.Resolve("6586")
		require.True(t, ok)
		require.Equal(t, "Ben Crellin", e.Name)
	})

	t.Run("UnknownIDStillResolves", func(t *testing.T) {
		e, ok := roster.Resolve(" 12345 ")
		require.True(t, ok)
		require.Equal(t, Entry{Name: "12345", EntryID: 12345}, e)
	})

	t.Run("NameMiss", func(t *testing.T) {
		_, ok := roster.Resolve("FPL Nobody")
		require.False(t, ok)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experts.yaml")
	body := "- name: FPL Focal\n  entry_id: 200\n- name: Pras\n  entry_id: 3570\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	roster, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Roster{{Name: "FPL Focal", EntryID: 200}, {Name: "Pras", EntryID: 3570}}, roster)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
