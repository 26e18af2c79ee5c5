package service

import (
	"OM_Profiles/internal/pkg"
	rdsrepo "OM_Profiles/internal/repository/redis"

	"github.com/redis/go-redis/v9"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *rdsrepo.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig, rdb *redis.Client) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &rdsrepo.EmailRepository{RDB: rdb}}
}

// SendCode scope 为 register / reset
func (s *EmailService) SendCode(scope, email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.rds.SetCode(scope, email, code); err != nil {
		return err
	}

	subject := "注册验证"
	if scope == "reset" {
		subject = "重置密码"
	}
	html := pkg.EmailCodeHTML(subject, code, rdsrepo.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, subject+"验证码", html); err != nil {
		// 发送失败就把码作废，避免用户拿不到却占着额度
		_ = s.rds.DeleteCode(scope, email)
		return err
	}
	return nil
}

// VerifyCode 校验验证码并一次性删除
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	val, err := s.rds.GetCode(scope, email)
	if err != nil {
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteCode(scope, email); err != nil {
		return false, err
	}
	return true, nil
}

// NotifyReport 新举报时给管理员发提醒，失败不影响举报本身
func (s *EmailService) NotifyReport(adminEmail, profileName, reason string, total int64) {
	if adminEmail == "" {
		return
	}
	html := pkg.ReportNoticeHTML(profileName, reason, total)
	_ = pkg.SendEmail(s.emailCfg, adminEmail, "新举报提醒", html)
}
