package model

import "time"

// 举报理由，与前端选项保持一致
const (
	ReportReasonInappropriate = "Inappropriate content"
	ReportReasonNotProfile    = "Not a color profile"
	ReportReasonCopyright     = "Copyright issue"
	ReportReasonOther         = "Other"
)

// Report 同一人可对同一档案重复举报，不做去重
type Report struct {
	ID          uint64 `gorm:"primaryKey"`
	ProfileID   uint64 `gorm:"not null;index"`
	ReporterID  uint64 `gorm:"not null;index"`
	Reason      string `gorm:"size:64;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Report) TableName() string {
	return "reports"
}
