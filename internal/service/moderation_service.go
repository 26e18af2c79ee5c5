package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"OM_Profiles/internal/model"
	"OM_Profiles/internal/pkg"
	"OM_Profiles/internal/repository/mysql"

	"gorm.io/gorm"
)

// ModerationService 档案可见性状态机 + 用户封禁。
// 档案只有 Visible/Hidden 两态，外加管理员删除这个终态；
// 封禁用户不影响其已有档案的可见性，只拦截后续上传。
type ModerationService struct {
	profiles *mysql.ProfileRepository
	reports  *mysql.ReportRepository
	users    *mysql.UserRepository

	mail       *EmailService
	adminEmail string
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{
		profiles: &mysql.ProfileRepository{DB: db},
		reports:  &mysql.ReportRepository{DB: db},
		users:    &mysql.UserRepository{DB: db},
	}
}

// WithReportNotice 配置后，每条新举报都给管理员发邮件提醒
func (s *ModerationService) WithReportNotice(mail *EmailService, adminEmail string) *ModerationService {
	s.mail = mail
	s.adminEmail = adminEmail
	return s
}

// FileReport 举报只是信号，不触发任何状态转移；隐藏永远是管理员手动操作
func (s *ModerationService) FileReport(ctx context.Context, profileID, reporterID uint64, reason, description string) (*model.Report, error) {
	if profileID == 0 || reporterID == 0 {
		return nil, pkg.Validationf("invalid id")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, pkg.Validationf("report reason is required")
	}
	ok, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkg.NotFoundf("profile %d", profileID)
	}
	report := &model.Report{
		ProfileID:   profileID,
		ReporterID:  reporterID,
		Reason:      reason,
		Description: description,
	}
	if err = s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	if s.mail != nil && s.adminEmail != "" {
		if p, perr := s.profiles.FindByID(ctx, profileID); perr == nil {
			total, _ := s.reports.CountByProfile(ctx, profileID)
			go s.mail.NotifyReport(s.adminEmail, p.Name, reason, total)
		}
	}
	return report, nil
}

// ToggleVisibility 管理员显隐开关，返回新状态。权限由路由中间件把关。
func (s *ModerationService) ToggleVisibility(ctx context.Context, profileID, adminID uint64) (bool, error) {
	newState, err := s.profiles.ToggleVisible(ctx, profileID, adminID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, pkg.NotFoundf("profile %d", profileID)
	}
	return newState, err
}

func (s *ModerationService) ToggleFeatured(ctx context.Context, profileID uint64) (bool, error) {
	newState, err := s.profiles.ToggleFeatured(ctx, profileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, pkg.NotFoundf("profile %d", profileID)
	}
	return newState, err
}

// DismissReports 驳回举报：清空举报并恢复可见，仓储层保证二者同事务
func (s *ModerationService) DismissReports(ctx context.Context, profileID, adminID uint64) error {
	err := s.reports.DismissByProfile(ctx, profileID, adminID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkg.NotFoundf("profile %d", profileID)
	}
	return err
}

// DeleteProfile 级联删除，半途失败整体回滚并归为 ErrCascade
func (s *ModerationService) DeleteProfile(ctx context.Context, profileID, adminID uint64) error {
	err := s.reports.CascadeDelete(ctx, profileID, adminID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkg.NotFoundf("profile %d", profileID)
	}
	if err != nil {
		return errors.Join(pkg.ErrCascade, err)
	}
	return nil
}

// BanUser 单向封禁，无解封路径
func (s *ModerationService) BanUser(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return pkg.Validationf("invalid user id")
	}
	affected, err := s.users.Ban(ctx, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.NotFoundf("user %d", userID)
	}
	return nil
}

func (s *ModerationService) ListReports(ctx context.Context, profileID uint64) ([]model.Report, error) {
	return s.reports.ListByProfile(ctx, profileID)
}

// ListUsers 管理端用户列表，封禁操作在这里选人
func (s *ModerationService) ListUsers(ctx context.Context, offset, limit int) ([]model.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.users.List(ctx, offset, limit)
}

type Sender func(ctx context.Context, ob *model.ModerationOutbox) error

// OutboxRelayer 把审核事件从 outbox 表异步投递出去
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run outbox启动器
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("moderation outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkRetry(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 事件投递到 kafka，key 用 profile id 保序
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ModerationOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.ProfileID), []byte(ob.Payload))
	}
}

// LogSender 默认 sender：本地开发没有 kafka 时先打印
func LogSender(ctx context.Context, ob *model.ModerationOutbox) error {
	log.Printf("OUTBOX SEND type=%s profile=%d actor=%d payload=%s", ob.EventType, ob.ProfileID, ob.ActorID, ob.Payload)
	return nil
}
