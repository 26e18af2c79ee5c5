package mysql

import (
	"context"
	"errors"
	"time"

	"OM_Profiles/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func (r *ProfileRepository) Create(ctx context.Context, p *model.ColorProfile) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// FindVisibleByID 公开详情页入口，隐藏的档案等同于不存在
func (r *ProfileRepository) FindVisibleByID(ctx context.Context, id uint64) (*model.ColorProfile, error) {
	var p model.ColorProfile
	err := r.DB.WithContext(ctx).First(&p, "id = ? AND visible = ?", id, true).Error
	return &p, err
}

// FindByID 管理端入口，不看可见性
func (r *ProfileRepository) FindByID(ctx context.Context, id uint64) (*model.ColorProfile, error) {
	var p model.ColorProfile
	err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *ProfileRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.ColorProfile{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// ListVisibleCursor 目录页查询，只吐 visible 的行；(created_at, id) 严格游标
func (r *ProfileRepository) ListVisibleCursor(ctx context.Context, lastID uint64, lastCreatedAt time.Time, limit int) ([]model.ColorProfile, error) {
	var list []model.ColorProfile
	q := r.DB.WithContext(ctx).Where("visible = ?", true)
	if !lastCreatedAt.IsZero() {
		q = q.Where("(created_at < ? OR (created_at = ? AND id < ?))", lastCreatedAt, lastCreatedAt, lastID)
	}
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *ProfileRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]model.ColorProfile, error) {
	var list []model.ColorProfile
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// IncrementView 计数必须是数据库侧的相对更新，并发下读改写会丢增量
func (r *ProfileRepository) IncrementView(ctx context.Context, id uint64) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.ColorProfile{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	return res.RowsAffected, res.Error
}

func (r *ProfileRepository) IncrementDownload(ctx context.Context, id uint64) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.ColorProfile{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1"))
	return res.RowsAffected, res.Error
}

// ToggleVisible 读后翻转；两个管理员并发各自翻各自的，最终以后写为准，
// 每次调用本身是完整一致的。显隐变化与其他审核动作一样走 outbox。
func (r *ProfileRepository) ToggleVisible(ctx context.Context, id, actorID uint64) (bool, error) {
	var newState bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.ColorProfile
		if err := tx.Select("id", "visible").First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		newState = !p.Visible
		if err := tx.Model(&model.ColorProfile{}).
			Where("id = ?", id).
			Update("visible", newState).Error; err != nil {
			return err
		}
		event := model.ModEventHidden
		if newState {
			event = model.ModEventRestored
		}
		return insertOutbox(tx, event, id, actorID, nil)
	})
	return newState, err
}

func (r *ProfileRepository) ToggleFeatured(ctx context.Context, id uint64) (bool, error) {
	var newState bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.ColorProfile
		if err := tx.Select("id", "featured").First(&p, "id = ?", id).Error; err != nil {
			return err
		}
		newState = !p.Featured
		return tx.Model(&model.ColorProfile{}).
			Where("id = ?", id).
			Update("featured", newState).Error
	})
	return newState, err
}

func (r *ProfileRepository) AddImage(ctx context.Context, img *model.ProfileImage) error {
	return r.DB.WithContext(ctx).Create(img).Error
}

func (r *ProfileRepository) ListImages(ctx context.Context, profileID uint64) ([]model.ProfileImage, error) {
	var imgs []model.ProfileImage
	err := r.DB.WithContext(ctx).Where("profile_id = ?", profileID).Find(&imgs).Error
	return imgs, err
}

// DashboardStats 管理端总览数据
type DashboardStats struct {
	TotalUsers       int64
	TotalProfiles    int64
	TotalDownloads   int64
	ProfilesThisWeek int64
}

func (r *ProfileRepository) Stats(ctx context.Context, weekAgo time.Time) (*DashboardStats, error) {
	var s DashboardStats
	db := r.DB.WithContext(ctx)
	if err := db.Model(&model.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.ColorProfile{}).Count(&s.TotalProfiles).Error; err != nil {
		return nil, err
	}
	var sum *int64
	if err := db.Model(&model.ColorProfile{}).
		Select("SUM(download_count)").Scan(&sum).Error; err != nil {
		return nil, err
	}
	if sum != nil {
		s.TotalDownloads = *sum
	}
	if err := db.Model(&model.ColorProfile{}).
		Where("created_at >= ?", weekAgo).Count(&s.ProfilesThisWeek).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ProfileRepository) TopByDownloads(ctx context.Context, limit int) ([]model.ColorProfile, error) {
	var list []model.ColorProfile
	err := r.DB.WithContext(ctx).
		Order("download_count DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// IsOwner 内容字段只允许创建者改
func (r *ProfileRepository) IsOwner(ctx context.Context, profileID, userID uint64) (bool, error) {
	var p model.ColorProfile
	err := r.DB.WithContext(ctx).Select("id", "owner_id").First(&p, "id = ?", profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err != nil {
		return false, err
	}
	return p.OwnerID == userID, nil
}
