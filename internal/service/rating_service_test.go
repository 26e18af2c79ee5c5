package service

import (
	"context"
	"errors"
	"testing"

	"OM_Profiles/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_RejectsOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	for _, v := range []int{0, -1, 6, 100} {
		_, err := svc.Submit(ctx, p.ID, 2, v)
		assert.True(t, errors.Is(err, pkg.ErrValidation), "value %d", v)
	}
}

func TestSubmit_MissingProfileIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	_, err := svc.Submit(context.Background(), 777, 2, 4)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

// 展示规则：一位小数；零评分显示 New 而不是 0.0
func TestRatingSummaryDisplay(t *testing.T) {
	empty := &RatingSummary{}
	assert.Equal(t, "New", empty.Display())

	avg := 4.0
	three := &RatingSummary{AvgRating: &avg, TotalRatings: 3}
	assert.Equal(t, "4.0", three.Display())

	avg2 := 4.666666
	assert.Equal(t, "4.7", (&RatingSummary{AvgRating: &avg2, TotalRatings: 3}).Display())
}

func TestSubmit_Roundtrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	var sum *RatingSummary
	var err error
	for i, v := range []int{4, 5, 3} {
		sum, err = svc.Submit(ctx, p.ID, uint64(i+1), v)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, sum.TotalRatings)
	assert.Equal(t, "4.0", sum.Display())

	mine, err := svc.UserRating(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, mine)
}
