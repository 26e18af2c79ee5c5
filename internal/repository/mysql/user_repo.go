package mysql

import (
	"context"

	"OM_Profiles/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ? OR email = ?", username, username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var usr model.User
	err := r.DB.Where("email = ?", email).First(&usr).Error
	return &usr, err
}

func (r *UserRepository) UpdatePassword(user *model.User, newPassword string) error {
	return r.DB.Model(user).Update("password", newPassword).Error
}

// Ban 单向动作，没有解封路径
func (r *UserRepository) Ban(ctx context.Context, userID uint64) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("banned", true)
	return res.RowsAffected, res.Error
}

// IsBanned 上传流程在创建档案前必须查一次
func (r *UserRepository) IsBanned(ctx context.Context, userID uint64) (bool, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Select("id", "banned").First(&user, userID).Error
	if err != nil {
		return false, err
	}
	return user.Banned, nil
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]model.User, error) {
	var list []model.User
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}
