package mysql

import (
	"context"
	"errors"

	"OM_Profiles/internal/model"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

// Toggle 有则删、无则插，返回翻转后的收藏态。
// 这是 toggle 不是 set，盲目重试会来回翻，调用方自己持有权威状态。
func (r *BookmarkRepository) Toggle(ctx context.Context, userID, profileID uint64) (bool, error) {
	var bookmarked bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b model.Bookmark
		err := tx.Where("user_id = ? AND profile_id = ?", userID, profileID).
			First(&b).Error
		if err == nil {
			bookmarked = false
			return tx.Delete(&b).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		bookmarked = true
		return tx.Create(&model.Bookmark{UserID: userID, ProfileID: profileID}).Error
	})
	return bookmarked, err
}

func (r *BookmarkRepository) IsBookmarked(ctx context.Context, userID, profileID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Bookmark{}).
		Where("user_id = ? AND profile_id = ?", userID, profileID).
		Count(&n).Error
	return n > 0, err
}

// ListProfileIDs 前端用它维护权威的收藏集合
func (r *BookmarkRepository) ListProfileIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.WithContext(ctx).Model(&model.Bookmark{}).
		Where("user_id = ?", userID).
		Pluck("profile_id", &ids).Error
	return ids, err
}
