package model

import "time"

// Bookmark 行存在即收藏
type Bookmark struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_profile"`
	ProfileID uint64 `gorm:"not null;index;uniqueIndex:uk_user_profile"`
	CreatedAt time.Time
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
