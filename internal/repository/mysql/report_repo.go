package mysql

import (
	"context"
	"encoding/json"
	"fmt"

	"OM_Profiles/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

// Create 举报落库并写 outbox，同一事务。重复举报不做抑制。
func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		return insertOutbox(tx, model.ModEventReportFiled, report.ProfileID, report.ReporterID,
			map[string]any{"reason": report.Reason})
	})
}

func (r *ReportRepository) CountByProfile(ctx context.Context, profileID uint64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Report{}).
		Where("profile_id = ?", profileID).Count(&n).Error
	return n, err
}

func (r *ReportRepository) ListByProfile(ctx context.Context, profileID uint64) ([]model.Report, error) {
	var list []model.Report
	err := r.DB.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// DismissByProfile 管理员驳回举报：清空该档案全部举报并恢复可见，一个事务内完成。
// 零举报时删除是空操作，照样恢复可见。
func (r *ReportRepository) DismissByProfile(ctx context.Context, profileID, adminID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.ColorProfile
		if err := tx.Select("id").First(&p, "id = ?", profileID).Error; err != nil {
			return err
		}
		res := tx.Where("profile_id = ?", profileID).Delete(&model.Report{})
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Model(&model.ColorProfile{}).
			Where("id = ?", profileID).
			Update("visible", true).Error; err != nil {
			return err
		}
		return insertOutbox(tx, model.ModEventReportsCleared, profileID, adminID,
			map[string]any{"cleared": res.RowsAffected})
	})
}

// CascadeDelete 管理员删除档案：先清从属行再删主行。
// 任何一步失败整体回滚，不存在提交了一半的结果。
func (r *ReportRepository) CascadeDelete(ctx context.Context, profileID, adminID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.ColorProfile
		if err := tx.Select("id").First(&p, "id = ?", profileID).Error; err != nil {
			return err
		}
		for _, m := range []any{
			&model.ProfileImage{},
			&model.Rating{},
			&model.Comment{},
			&model.Report{},
			&model.Bookmark{},
		} {
			if err := tx.Where("profile_id = ?", profileID).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&model.ColorProfile{}, "id = ?", profileID).Error; err != nil {
			return err
		}
		return insertOutbox(tx, model.ModEventDeleted, profileID, adminID, nil)
	})
}

func insertOutbox(tx *gorm.DB, eventType string, profileID, actorID uint64, extra map[string]any) error {
	payload := map[string]any{
		"event":      eventType,
		"profile_id": profileID,
		"actor_id":   actorID,
	}
	for k, v := range extra {
		payload[k] = v
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
	}
	return tx.Create(&model.ModerationOutbox{
		EventType: eventType,
		ProfileID: profileID,
		ActorID:   actorID,
		Payload:   string(raw),
	}).Error
}
