package service

import (
	"context"
	"errors"
	"fmt"

	"OM_Profiles/internal/pkg"
	"OM_Profiles/internal/repository/mysql"

	"gorm.io/gorm"
)

type RatingService struct {
	repo *mysql.RatingRepository
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{
		repo: &mysql.RatingRepository{DB: db},
	}
}

// RatingSummary 提交后的聚合快照，Display 只用于展示，落库保留全精度
type RatingSummary struct {
	AvgRating    *float64 `json:"avg_rating"`
	TotalRatings int64    `json:"total_ratings"`
}

// Display 一位小数；零评分显示 New，不显示 0.0
func (s *RatingSummary) Display() string {
	if s.AvgRating == nil {
		return "New"
	}
	return fmt.Sprintf("%.1f", *s.AvgRating)
}

// Submit 一人一票：同一用户重复提交是覆盖不是追加。
// 评分写入和聚合重算在仓储层同一事务里完成。
func (s *RatingService) Submit(ctx context.Context, profileID, userID uint64, value int) (*RatingSummary, error) {
	if profileID == 0 || userID == 0 {
		return nil, pkg.Validationf("invalid id")
	}
	if value < 1 || value > 5 {
		return nil, pkg.Validationf("rating must be 1-5, got %d", value)
	}
	sum, err := s.repo.Upsert(ctx, profileID, userID, value)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFoundf("profile %d", profileID)
	}
	if err != nil {
		return nil, err
	}
	return &RatingSummary{AvgRating: sum.AvgRating, TotalRatings: sum.TotalRatings}, nil
}

// UserRating 回显当前用户的分值，没打过返回 0
func (s *RatingService) UserRating(ctx context.Context, profileID, userID uint64) (int, error) {
	if profileID == 0 || userID == 0 {
		return 0, pkg.Validationf("invalid id")
	}
	return s.repo.FindByUser(ctx, profileID, userID)
}
