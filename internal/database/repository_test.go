package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranngoc769/QTKit/internal/timestamp"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func sampleResult(input string) timestamp.Result {
	c, _ := timestamp.Parse(input)
	return timestamp.Convert(c, timestamp.Settings{ZoneLabel: "VN"})
}

func TestSaveConversionAndGetRecent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	record, err := repo.SaveConversion(ctx, sampleResult("1640995200"))
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, "1640995200", record.Input)
	assert.Equal(t, "seconds", record.Unit)
	assert.Equal(t, "2022-01-01 00:00:00", record.GMT)
	assert.Equal(t, "2022-01-01 07:00:00", record.Local)

	records, err := repo.GetRecentConversions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.Input, records[0].Input)
}

func TestSaveConversionDedupesByInput(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.SaveConversion(ctx, sampleResult("1640995200"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	second, err := repo.SaveConversion(ctx, sampleResult("1640995200"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.DetectedAt.After(first.DetectedAt))

	records, err := repo.GetRecentConversions(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSearchConversions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.SaveConversion(ctx, sampleResult("1640995200"))
	require.NoError(t, err)
	_, err = repo.SaveConversion(ctx, sampleResult("1700000000"))
	require.NoError(t, err)

	records, err := repo.SearchConversions(ctx, "1640995", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1640995200", records[0].Input)

	// Matching on the formatted output works too.
	records, err = repo.SearchConversions(ctx, "2022-01-01", 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDeleteConversion(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	record, err := repo.SaveConversion(ctx, sampleResult("1640995200"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteConversion(ctx, record.ID))

	records, err := repo.GetRecentConversions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCleanupOldRecordsKeepsMostRecent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	inputs := []string{"1640995200", "1700000000", "1800000000"}
	for _, input := range inputs {
		_, err := repo.SaveConversion(ctx, sampleResult(input))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	require.NoError(t, repo.CleanupOldRecords(ctx, 30, 2))

	records, err := repo.GetRecentConversions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1800000000", records[0].Input)
	assert.Equal(t, "1700000000", records[1].Input)
}

func TestClearAllRecords(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.SaveConversion(ctx, sampleResult("1640995200"))
	require.NoError(t, err)

	require.NoError(t, repo.ClearAllRecords(ctx))

	records, err := repo.GetRecentConversions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
