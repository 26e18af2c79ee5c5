package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toggle 按设计来回翻：第一次收藏，第二次取消
func TestBookmarkToggle_Alternates(t *testing.T) {
	db := newTestDB(t)
	repo := &BookmarkRepository{DB: db}
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	bookmarked, err := repo.Toggle(ctx, 2, p.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	is, err := repo.IsBookmarked(ctx, 2, p.ID)
	require.NoError(t, err)
	assert.True(t, is)

	bookmarked, err = repo.Toggle(ctx, 2, p.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)

	is, err = repo.IsBookmarked(ctx, 2, p.ID)
	require.NoError(t, err)
	assert.False(t, is)
}

func TestBookmarkListProfileIDs(t *testing.T) {
	db := newTestDB(t)
	repo := &BookmarkRepository{DB: db}
	ctx := context.Background()

	a := seedProfile(t, db, 1)
	b := seedProfile(t, db, 1)
	_, err := repo.Toggle(ctx, 5, a.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, 5, b.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, 6, a.ID)
	require.NoError(t, err)

	ids, err := repo.ListProfileIDs(ctx, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{a.ID, b.ID}, ids)
}
