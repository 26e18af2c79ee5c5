package model

import "time"

type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	ProfileID uint64    `gorm:"not null;index:idx_profile_time"`
	UserID    uint64    `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_profile_time,priority:2,sort:desc"`
	UpdatedAt time.Time
}

func (Comment) TableName() string {
	return "comments"
}
