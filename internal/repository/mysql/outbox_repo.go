package mysql

import (
	"context"

	"OM_Profiles/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// List 只取待投递的事件
func (r *OutboxRepository) List(ctx context.Context, batch int) ([]model.ModerationOutbox, error) {
	var rows []model.ModerationOutbox
	err := r.DB.WithContext(ctx).
		Where("status = ?", 0).
		Order("id ASC").
		Limit(batch).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ModerationOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ModerationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"retry":  gorm.Expr("retry + 1"),
			"status": 0,
		}).Error
}
