package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() }) //nolint: errcheck
	return store
}

func entry(name string, createdAt time.Time) Entry {
	return Entry{
		ID:              uuid.New(),
		EmployeeName:    name,
		ExperienceLevel: "Senior",
		JobTitle:        "Data Scientist",
		CompanyLocation: "IN",
		RemoteRatio:     50,
		WorkYear:        2024,
		SalaryUSD:       100000,
		CreatedAt:       createdAt,
	}
}

func TestRecordAndRecent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, entry("Jane Doe", base)))
	require.NoError(t, store.Record(ctx, entry("John Smith", base.Add(time.Minute))))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "John Smith", entries[0].EmployeeName, "newest first")
	assert.Equal(t, "Jane Doe", entries[1].EmployeeName)
	assert.Equal(t, 100000.0, entries[0].SalaryUSD)
	assert.Equal(t, "IN", entries[0].CompanyLocation)
}

func TestRecentEmpty(t *testing.T) {
	store := setupStore(t)

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentLimit(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, entry("Employee", base.Add(time.Duration(i)*time.Second))))
	}

	entries, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRecordDuplicateID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	e := entry("Jane Doe", time.Now().UTC())
	require.NoError(t, store.Record(ctx, e))
	assert.Error(t, store.Record(ctx, e), "primary key violation")
}
