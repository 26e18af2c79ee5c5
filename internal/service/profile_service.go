package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"OM_Profiles/internal/model"
	"OM_Profiles/internal/pkg"
	"OM_Profiles/internal/repository/mysql"

	"gorm.io/gorm"
)

type ProfileService struct {
	profiles *mysql.ProfileRepository
	users    *mysql.UserRepository
	comments *mysql.CommentRepository
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		profiles: &mysql.ProfileRepository{DB: db},
		users:    &mysql.UserRepository{DB: db},
		comments: &mysql.CommentRepository{DB: db},
	}
}

type CreateProfileInput struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	CameraModel        string   `json:"camera_model"`
	LensModel          string   `json:"lens_model"`
	LightingConditions string   `json:"lighting_conditions"`
	Tags               []string `json:"tags"`
	ImageURLs          []string `json:"image_urls"`
}

// Create 上传入口。被封禁用户的新投稿在这里拒绝——封禁只拦未来动作，
// 不回头隐藏已有档案。
func (s *ProfileService) Create(ctx context.Context, ownerID uint64, in *CreateProfileInput) (*model.ColorProfile, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("%w: sign in to upload", pkg.ErrAuthorization)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, pkg.Validationf("profile name is required")
	}
	banned, err := s.users.IsBanned(ctx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFoundf("user %d", ownerID)
	}
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, fmt.Errorf("%w: account banned", pkg.ErrAuthorization)
	}

	p := &model.ColorProfile{
		OwnerID:            ownerID,
		Name:               in.Name,
		Description:        in.Description,
		Category:           in.Category,
		CameraModel:        in.CameraModel,
		LensModel:          in.LensModel,
		LightingConditions: in.LightingConditions,
		Tags:               JoinTags(in.Tags),
		Visible:            true,
	}
	if err = s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	for _, u := range in.ImageURLs {
		if err = s.profiles.AddImage(ctx, &model.ProfileImage{ProfileID: p.ID, ImageURL: u}); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Detail 公开详情，隐藏档案对普通用户等同不存在
func (s *ProfileService) Detail(ctx context.Context, profileID uint64) (*model.ColorProfile, error) {
	p, err := s.profiles.FindVisibleByID(ctx, profileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFoundf("profile %d", profileID)
	}
	return p, err
}

// Catalog 取一页可见档案后在内存里过筛选面板，与原行为一致
func (s *ProfileService) Catalog(ctx context.Context, lastID uint64, lastCreatedAt time.Time, limit int, f Filters, query string) ([]model.ColorProfile, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	list, err := s.profiles.ListVisibleCursor(ctx, lastID, lastCreatedAt, limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.ColorProfile, 0, len(list))
	for i := range list {
		if Matches(&list[i], f, query) {
			out = append(out, list[i])
		}
	}
	return out, nil
}

func (s *ProfileService) ListByOwner(ctx context.Context, ownerID uint64) ([]model.ColorProfile, error) {
	return s.profiles.ListByOwner(ctx, ownerID)
}

func (s *ProfileService) Images(ctx context.Context, profileID uint64) ([]model.ProfileImage, error) {
	return s.profiles.ListImages(ctx, profileID)
}

// AddComment 登录可评，空内容拒绝
func (s *ProfileService) AddComment(ctx context.Context, profileID, userID uint64, content string) (*model.Comment, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: sign in to comment", pkg.ErrAuthorization)
	}
	if strings.TrimSpace(content) == "" {
		return nil, pkg.Validationf("comment content is required")
	}
	ok, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkg.NotFoundf("profile %d", profileID)
	}
	c := &model.Comment{ProfileID: profileID, UserID: userID, Content: content}
	if err = s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ProfileService) Comments(ctx context.Context, profileID uint64) ([]model.Comment, error) {
	return s.comments.ListByProfile(ctx, profileID)
}

// Stats 管理端总览
func (s *ProfileService) Stats(ctx context.Context) (*mysql.DashboardStats, error) {
	return s.profiles.Stats(ctx, time.Now().AddDate(0, 0, -7))
}

func (s *ProfileService) TopByDownloads(ctx context.Context, limit int) ([]model.ColorProfile, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.profiles.TopByDownloads(ctx, limit)
}
