package model

import "time"

// 审核事件类型
const (
	ModEventReportFiled    = "report_filed"
	ModEventHidden         = "hidden"
	ModEventRestored       = "restored"
	ModEventReportsCleared = "reports_cleared"
	ModEventDeleted        = "deleted"
)

// ModerationOutbox 审核事件监控表，与业务写同事务落库，异步投递 kafka
type ModerationOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:24;not null"`
	ProfileID uint64 `gorm:"not null"`
	ActorID   uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ModerationOutbox) TableName() string { return "moderation_outbox" }
