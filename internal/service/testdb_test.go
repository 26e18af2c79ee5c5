package service

import (
	"testing"

	"OM_Profiles/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
		Name:        "City Shadows",
		Description: "Contrasty street look",
		Category:    "Street",
		CameraModel: "OM-1",
		Visible:     true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedUser(t *testing.T, db *gorm.DB, username string, banned bool) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Password: "x",
		Email:    username + "@example.com",
		Banned:   banned,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
