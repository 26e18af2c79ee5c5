package model

import "time"

// ColorProfile 调色档案，核心聚合：互动计数与可见性都落在这一行上
type ColorProfile struct {
	ID                 uint64    `gorm:"primaryKey"`
	OwnerID            uint64    `gorm:"not null;index:idx_owner_time"`
	Name               string    `gorm:"size:200;not null"`
	Description        string    `gorm:"type:text"`
	Category           string    `gorm:"size:32;index"`
	CameraModel        string    `gorm:"size:64;index"`
	LensModel          string    `gorm:"size:64"`
	LightingConditions string    `gorm:"size:32"`
	Tags               string    `gorm:"type:text"` // 逗号分隔
	ViewCount          int64     `gorm:"not null;default:0"`
	DownloadCount      int64     `gorm:"not null;default:0"`
	AvgRating          *float64  // 无评分时为 NULL
	TotalRatings       int64     `gorm:"not null;default:0"`
	Visible            bool      `gorm:"not null;default:true;index"`
	Featured           bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"index:idx_owner_time,priority:2,sort:desc"`
	UpdatedAt          time.Time
}

func (ColorProfile) TableName() string {
	return "color_profiles"
}

type ProfileImage struct {
	ID        uint64 `gorm:"primaryKey"`
	ProfileID uint64 `gorm:"not null;index"`
	ImageURL  string `gorm:"size:512;not null"`
	CreatedAt time.Time
}

func (ProfileImage) TableName() string {
	return "profile_images"
}
