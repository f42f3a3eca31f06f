package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	s := NewService(NewMemoryRepository())
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return s
}

func profile(id int64, name string) Profile {
	return Profile{TelegramID: id, Username: name, DisplayName: name}
}

func TestRecordViewCreatesUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.RecordView(ctx, profile(1, "alice"), "whisky", "Monkey Shoulder"))

	stat, err := svc.GetUserByTelegramID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", stat.Username)
	assert.True(t, stat.ViewedBrands["whisky|Monkey Shoulder"])
	assert.False(t, stat.LastActivity.IsZero())
}

func TestRecordResultMonotonicBest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p := profile(2, "bob")

	require.NoError(t, svc.RecordResult(ctx, p, "test", "whisky", 6, 10))
	require.NoError(t, svc.RecordResult(ctx, p, "test", "whisky", 4, 10))
	require.NoError(t, svc.RecordResult(ctx, p, "test", "whisky", 8, 10))
	require.NoError(t, svc.RecordResult(ctx, p, "test", "whisky", 8, 10))

	stat, err := svc.GetUserByTelegramID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, stat.TestsCompleted)
	assert.Equal(t, 26, stat.TotalPoints)
	assert.Equal(t, 8, stat.BestScores["test:whisky"])
}

func TestTopOrdering(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.RecordResult(ctx, profile(1, "alice"), "test", "beer", 5, 10))
	require.NoError(t, svc.RecordResult(ctx, profile(2, "bob"), "test", "beer", 9, 10))
	require.NoError(t, svc.RecordResult(ctx, profile(3, "carol"), "test", "beer", 7, 10))
	// Zero score never enters the board.
	require.NoError(t, svc.RecordResult(ctx, profile(4, "dave"), "test", "beer", 0, 10))

	top, err := svc.Top(ctx, "test", "beer", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].TelegramID)
	assert.Equal(t, int64(3), top[1].TelegramID)

	all, err := svc.Top(ctx, "test", "beer", 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFindByName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.RecordView(ctx, Profile{TelegramID: 1, Username: "barman_ivan", DisplayName: "Иван"}, "beer", "Coors"))
	require.NoError(t, svc.RecordView(ctx, Profile{TelegramID: 2, Username: "ivanna", DisplayName: "Иванна"}, "beer", "Coors"))
	require.NoError(t, svc.RecordView(ctx, Profile{TelegramID: 3, Username: "petr", DisplayName: "Пётр"}, "beer", "Coors"))

	got, err := svc.FindByName(ctx, "ivan")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.FindByName(ctx, "нет такого")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindByPhone(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p := profile(7, "grace")

	require.NoError(t, svc.RecordView(ctx, p, "wine", "Piccola Nostra"))
	require.NoError(t, svc.SetPhone(ctx, p, "+7 (900) 123-45-67"))

	stat, err := svc.FindByPhone(ctx, "+79001234567")
	require.NoError(t, err)
	assert.Equal(t, int64(7), stat.TelegramID)

	_, err = svc.FindByPhone(ctx, "+70000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileMergePreservesFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.RecordView(ctx, Profile{TelegramID: 5, Username: "old", DisplayName: "Old Name"}, "beer", "Coors"))
	// A later update without a username must not erase the stored one.
	require.NoError(t, svc.RecordView(ctx, Profile{TelegramID: 5, DisplayName: "New Name"}, "beer", "Paulaner"))

	stat, err := svc.GetUserByTelegramID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "old", stat.Username)
	assert.Equal(t, "New Name", stat.DisplayName)
	assert.Len(t, stat.ViewedBrands, 2)
}
