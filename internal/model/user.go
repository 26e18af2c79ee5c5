package model

import "time"

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:32;not null"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Role      int    `gorm:"default:0"` // 0=user 1=admin
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	Banned    bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleUser  = 0
	RoleAdmin = 1
)
