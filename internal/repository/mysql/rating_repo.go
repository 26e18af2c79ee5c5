package mysql

import (
	"context"
	"errors"

	"OM_Profiles/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	DB *gorm.DB
}

// RatingSummary 重算后的聚合结果
type RatingSummary struct {
	AvgRating    *float64
	TotalRatings int64
}

// Upsert 一人一票写入并重算聚合，整个过程一个事务：
// 评分表和档案上的聚合字段任何时刻都不能互相矛盾。
// 聚合从评分表整表重算，不在旧值上做增量，并发打分才不会漂移。
func (r *RatingRepository) Upsert(ctx context.Context, profileID, userID uint64, value int) (*RatingSummary, error) {
	var sum RatingSummary
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先锁档案行，同一档案的并发打分在这里排队。
		// 不锁的话 REPEATABLE READ 下各自的快照看不见对方已提交的评分，
		// 后提交的会把聚合写小
		var p model.ColorProfile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&p, "id = ?", profileID).Error; err != nil {
			return err
		}

		// 唯一(profile_id, user_id)，冲突则覆盖分值
		rating := model.Rating{ProfileID: profileID, UserID: userID, Value: value}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rating).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Rating{}).
			Where("profile_id = ?", profileID).
			Count(&sum.TotalRatings).Error; err != nil {
			return err
		}
		if sum.TotalRatings > 0 {
			var avg float64
			if err := tx.Model(&model.Rating{}).
				Where("profile_id = ?", profileID).
				Select("AVG(value)").Scan(&avg).Error; err != nil {
				return err
			}
			sum.AvgRating = &avg
		}

		return tx.Model(&model.ColorProfile{}).
			Where("id = ?", profileID).
			Updates(map[string]any{
				"avg_rating":    sum.AvgRating,
				"total_ratings": sum.TotalRatings,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

// FindByUser 详情页回显当前用户打过的分
func (r *RatingRepository) FindByUser(ctx context.Context, profileID, userID uint64) (int, error) {
	var rating model.Rating
	err := r.DB.WithContext(ctx).
		Where("profile_id = ? AND user_id = ?", profileID, userID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rating.Value, nil
}
