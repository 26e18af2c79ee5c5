package service

import (
	"context"

	"OM_Profiles/internal/pkg"
	"OM_Profiles/internal/repository/mysql"
	rdsrepo "OM_Profiles/internal/repository/redis"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// EngagementService 浏览/下载计数。计数列只走数据库侧相对更新，绝不读改写。
type EngagementService struct {
	profiles *mysql.ProfileRepository
	guard    *rdsrepo.ViewGuardRepository
}

func NewEngagementService(db *gorm.DB, rdb *redis.Client) *EngagementService {
	return &EngagementService{
		profiles: &mysql.ProfileRepository{DB: db},
		guard:    rdsrepo.NewViewGuardRepository(rdb),
	}
}

// RecordView 同一会话对同一档案只计一次；去重判定在 redis，计数在 mysql。
// 守卫出错时宁可少计一次，也不能放开重复计数。
func (s *EngagementService) RecordView(ctx context.Context, sessionID string, profileID uint64) error {
	if sessionID == "" || profileID == 0 {
		return pkg.Validationf("invalid session or profile id")
	}
	first, err := s.guard.ShouldCountView(ctx, sessionID, profileID)
	if err != nil {
		return err
	}
	if !first {
		return nil
	}
	affected, err := s.profiles.IncrementView(ctx, profileID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFoundf("profile %d", profileID)
	}
	return nil
}

// RecordDownload 下载每次都计，不做会话去重
func (s *EngagementService) RecordDownload(ctx context.Context, profileID uint64) error {
	if profileID == 0 {
		return pkg.Validationf("invalid profile id")
	}
	affected, err := s.profiles.IncrementDownload(ctx, profileID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFoundf("profile %d", profileID)
	}
	return nil
}
