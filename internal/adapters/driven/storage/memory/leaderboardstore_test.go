package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
)

func TestNewLeaderboardStore(t *testing.T) {
	store := NewLeaderboardStore()
	require.NotNil(t, store)
}

func TestLeaderboardStore_SaveAndTop(t *testing.T) {
	store := NewLeaderboardStore()
	ctx := context.Background()

	_ = store.Save(ctx, domain.ScoreEntry{ID: "s1", Name: "Ada", Score: 150, RecordedAt: time.Now()})
	_ = store.Save(ctx, domain.ScoreEntry{ID: "s2", Name: "Grace", Score: 300, RecordedAt: time.Now()})
	_ = store.Save(ctx, domain.ScoreEntry{ID: "s3", Name: "Alan", Score: 75, RecordedAt: time.Now()})

	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "Grace", top[0].Name)
	assert.Equal(t, "Ada", top[1].Name)
	assert.Equal(t, "Alan", top[2].Name)
}

func TestLeaderboardStore_Top_Limit(t *testing.T) {
	store := NewLeaderboardStore()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_ = store.Save(ctx, domain.ScoreEntry{
			ID:    string(rune('a' + i)),
			Name:  "Player",
			Score: i * 10,
		})
	}

	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, top, 10)
	assert.Equal(t, 140, top[0].Score)
	assert.Equal(t, 50, top[9].Score)
}

func TestLeaderboardStore_Top_Empty(t *testing.T) {
	store := NewLeaderboardStore()

	top, err := store.Top(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestLeaderboardStore_Top_EqualScoresKeepSubmissionOrder(t *testing.T) {
	store := NewLeaderboardStore()
	ctx := context.Background()

	_ = store.Save(ctx, domain.ScoreEntry{ID: "first", Score: 100})
	_ = store.Save(ctx, domain.ScoreEntry{ID: "second", Score: 100})

	top, err := store.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "first", top[0].ID)
	assert.Equal(t, "second", top[1].ID)
}

func TestLeaderboardStore_Prune(t *testing.T) {
	store := NewLeaderboardStore()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_ = store.Save(ctx, domain.ScoreEntry{
			ID:    string(rune('a' + i)),
			Score: i,
		})
	}

	require.NoError(t, store.Prune(ctx, domain.LeaderboardSize))

	top, err := store.Top(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, top, domain.LeaderboardSize)
	assert.Equal(t, 11, top[0].Score)
	assert.Equal(t, 2, top[len(top)-1].Score)
}
