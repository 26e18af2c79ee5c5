package model

import "time"

// Rating (profile_id, user_id) 唯一，一人一票，重复提交走 upsert 覆盖
type Rating struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProfileID uint64 `gorm:"not null;index;uniqueIndex:uk_profile_user"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_profile_user"`
	Value     int    `gorm:"not null"` // 1~5
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Rating) TableName() string {
	return "ratings"
}
