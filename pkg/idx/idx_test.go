package idx_test

import (
	"slices"
	"testing"
	"time"

	"github.com/aussiebroadwan/careerhub/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewIsValid(t *testing.T) {
	id := idx.New()
	require.Len(t, id.String(), 26)
	require.True(t, idx.Valid(id.String()))
	require.WithinDuration(t, time.Now(), id.Time(), time.Second)
}

func TestValidRejectsForeignIDs(t *testing.T) {
	for _, s := range []string{"", " 01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "not-a-ulid", "507f1f77bcf86cd799439011", "6f1d2c1e-8a9b-4c1d-9e2f-3a4b5c6d7e8f"} {
		require.False(t, idx.Valid(s), s)
	}
	require.True(t, idx.Valid("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"))
}

func TestIDsSortByCreation(t *testing.T) {
	at := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	var ids []string
	for i := range 5 {
		ids = append(ids, idx.NewAt(at.Add(time.Duration(i)*time.Millisecond)).String())
	}
	// Same millisecond twice.
	ids = append(ids, idx.NewAt(at.Add(5*time.Millisecond)).String(), idx.NewAt(at.Add(5*time.Millisecond)).String())

	require.True(t, slices.IsSorted(ids))
	require.Len(t, slices.Compact(slices.Clone(ids)), len(ids))
}

func TestTime(t *testing.T) {
	at := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	require.Equal(t, at, idx.NewAt(at).Time())
	require.True(t, idx.ID("nope").Time().IsZero())
}
