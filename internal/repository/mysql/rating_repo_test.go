package mysql

import (
	"context"
	"errors"
	"sync"
	"testing"

	"OM_Profiles/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 聚合不变式：total 永远等于评分行数，avg 永远等于均值，无评分时 avg 为 NULL
func checkAggregates(t *testing.T, db *gorm.DB, profileID uint64) {
	t.Helper()
	var p model.ColorProfile
	require.NoError(t, db.First(&p, profileID).Error)

	var n int64
	require.NoError(t, db.Model(&model.Rating{}).Where("profile_id = ?", profileID).Count(&n).Error)
	assert.Equal(t, n, p.TotalRatings)

	if n == 0 {
		assert.Nil(t, p.AvgRating)
		return
	}
	require.NotNil(t, p.AvgRating)
	var ratings []model.Rating
	require.NoError(t, db.Where("profile_id = ?", profileID).Find(&ratings).Error)
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	assert.InDelta(t, float64(sum)/float64(len(ratings)), *p.AvgRating, 1e-9)
}

func TestRatingUpsert_ThreeUsers(t *testing.T) {
	db := newTestDB(t)
	repo := &RatingRepository{DB: db}
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	for i, v := range []int{4, 5, 3} {
		_, err := repo.Upsert(ctx, p.ID, uint64(i+1), v)
		require.NoError(t, err)
		checkAggregates(t, db, p.ID)
	}

	var got model.ColorProfile
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.EqualValues(t, 3, got.TotalRatings)
	require.NotNil(t, got.AvgRating)
	assert.InDelta(t, 4.0, *got.AvgRating, 1e-9)
}

// 同一用户重复打分是覆盖不是追加
func TestRatingUpsert_ReplacesNotDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := &RatingRepository{DB: db}
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, p.ID, 7, 2)
	require.NoError(t, err)
	sum, err := repo.Upsert(ctx, p.ID, 7, 5)
	require.NoError(t, err)

	assert.EqualValues(t, 1, sum.TotalRatings)
	require.NotNil(t, sum.AvgRating)
	assert.InDelta(t, 5.0, *sum.AvgRating, 1e-9)
	checkAggregates(t, db, p.ID)

	v, err := repo.FindByUser(ctx, p.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

// 不同用户并发打同一个档案，落库后每个人的评分都在，
// 聚合与评分表严格一致，不允许后提交者把聚合写小
func TestRatingUpsert_ConcurrentRatersStayConsistent(t *testing.T) {
	db := newTestDB(t)
	repo := &RatingRepository{DB: db}
	p := seedProfile(t, db, 1)

	const raters = 16
	errs := make(chan error, raters)
	var wg sync.WaitGroup
	for i := 0; i < raters; i++ {
		wg.Add(1)
		go func(userID uint64) {
			defer wg.Done()
			_, err := repo.Upsert(context.Background(), p.ID, userID, int(userID%5)+1)
			errs <- err
		}(uint64(i + 2))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	checkAggregates(t, db, p.ID)
	var got model.ColorProfile
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.EqualValues(t, raters, got.TotalRatings)
}

func TestRatingUpsert_ProfileMissing(t *testing.T) {
	db := newTestDB(t)
	repo := &RatingRepository{DB: db}

	_, err := repo.Upsert(context.Background(), 9999, 1, 4)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRatingFindByUser_NoneIsZero(t *testing.T) {
	db := newTestDB(t)
	repo := &RatingRepository{DB: db}
	p := seedProfile(t, db, 1)

	v, err := repo.FindByUser(context.Background(), p.ID, 42)
	require.NoError(t, err)
	assert.Zero(t, v)
}
