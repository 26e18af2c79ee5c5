package mysql

import (
	"testing"

	"OM_Profiles/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个内存库；单连接串行化写入，
// 并发用例照样能暴露应用层的丢更新问题
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.ColorProfile{},
		&model.ProfileImage{},
		&model.Rating{},
		&model.Comment{},
		&model.Report{},
		&model.Bookmark{},
		&model.ModerationOutbox{},
	))
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, ownerID uint64) *model.ColorProfile {
	t.Helper()
	p := &model.ColorProfile{
		OwnerID:     ownerID,
		Name:        "Forest Greens",
		Description: "Muted greens for overcast woodland walks",
		Category:    "Nature",
		CameraModel: "OM-1",
		Visible:     true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Password: "x",
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
