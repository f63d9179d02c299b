package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStore_RecordAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	require.NoError(t, store.Record(ctx, Run{
		RunID: "run-1", Started: now.Add(-time.Minute), Finished: now,
		Tools: 3, Explicit: 2, Generated: 0, Fallback: 1, Output: "tools.json",
	}))
	require.NoError(t, store.Record(ctx, Run{
		RunID: "run-2", Started: now, Finished: now.Add(time.Second),
		Tools: 4, Explicit: 4, Output: "tools.json",
	}))

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "run-2", runs[0].RunID)
	require.Equal(t, "run-1", runs[1].RunID)
	require.Equal(t, 3, runs[1].Tools)
	require.Equal(t, 1, runs[1].Fallback)
	require.Equal(t, now.Unix(), runs[1].Finished.Unix())
}

func TestStore_RecentHonorsLimit(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, Run{RunID: "r", Started: time.Now(), Finished: time.Now(), Output: "tools.json"}))
	}

	runs, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}
