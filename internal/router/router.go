package router

import (
	"os"
	"strconv"

	"OM_Profiles/internal/handler"
	"OM_Profiles/internal/middleware"
	"OM_Profiles/internal/pkg"
	"OM_Profiles/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	// 配置邮件环境
	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if smtpPort == 0 {
		smtpPort = 587
	}
	emailCfg := pkg.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     "OM Profiles <no-reply@example.com>",
	}

	emailSvc := service.NewEmailService(emailCfg, rdb)
	user := handler.NewUserHandler(service.NewUserService(db, rdb, emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	profile := handler.NewProfileHandler(db, rdb)
	rating := handler.NewRatingHandler(db)
	bookmark := handler.NewBookmarkHandler(db)
	moderation := service.NewModerationService(db).WithReportNotice(emailSvc, os.Getenv("ADMIN_EMAIL"))
	report := handler.NewReportHandler(moderation)
	admin := handler.NewAdminHandler(db)

	// 邮件相关接口
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 公开目录，匿名可浏览；浏览/下载计数也不要求登录
	r.GET("/api/profiles", profile.Catalog)
	catalogGroup := r.Group("/api/profile")
	{
		catalogGroup.GET("/:id", profile.Detail)
		catalogGroup.GET("/:id/comments", profile.Comments)
		catalogGroup.POST("/:id/view", profile.View)
		catalogGroup.POST("/:id/download", profile.Download)
	}

	// 登录态接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware(rdb))
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)

		authGroup.POST("/profile", profile.Create)
		authGroup.GET("/profile/mine", profile.Mine)
		authGroup.POST("/profile/:id/comment", profile.AddComment)
		authGroup.POST("/profile/:id/rating", rating.Submit)
		authGroup.GET("/profile/:id/rating", rating.Mine)
		authGroup.POST("/profile/:id/bookmark", bookmark.Toggle)
		authGroup.GET("/bookmarks", bookmark.List)
		authGroup.POST("/profile/:id/report", report.File)
	}

	// 管理端接口
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(rdb), middleware.AdminMiddleware())
	{
		adminGroup.POST("/profile/:id/visibility", admin.ToggleVisibility)
		adminGroup.POST("/profile/:id/featured", admin.ToggleFeatured)
		adminGroup.POST("/profile/:id/dismiss-reports", admin.DismissReports)
		adminGroup.GET("/profile/:id/reports", admin.ListReports)
		adminGroup.DELETE("/profile/:id", admin.DeleteProfile)
		adminGroup.GET("/users", admin.Users)
		adminGroup.POST("/user/:id/ban", admin.BanUser)
		adminGroup.GET("/stats", admin.Stats)
		adminGroup.GET("/top-profiles", admin.TopProfiles)
	}

	return r
}
