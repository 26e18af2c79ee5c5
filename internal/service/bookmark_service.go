package service

import (
	"context"
	"fmt"

	"OM_Profiles/internal/pkg"
	"OM_Profiles/internal/repository/mysql"

	"gorm.io/gorm"
)

type BookmarkService struct {
	repo *mysql.BookmarkRepository
}

func NewBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{
		repo: &mysql.BookmarkRepository{DB: db},
	}
}

// Toggle 未登录（userID=0）是授权错误，前端据此弹登录框而不是崩
func (s *BookmarkService) Toggle(ctx context.Context, userID, profileID uint64) (bool, error) {
	if userID == 0 {
		return false, fmt.Errorf("%w: sign in to bookmark", pkg.ErrAuthorization)
	}
	if profileID == 0 {
		return false, pkg.Validationf("invalid profile id")
	}
	return s.repo.Toggle(ctx, userID, profileID)
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, profileID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.repo.IsBookmarked(ctx, userID, profileID)
}

func (s *BookmarkService) ListIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: sign in to view bookmarks", pkg.ErrAuthorization)
	}
	return s.repo.ListProfileIDs(ctx, userID)
}
