package service

import (
	"context"
	"errors"
	"testing"

	"OM_Profiles/internal/model"
	"OM_Profiles/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReport_EmptyReasonRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	p := seedProfile(t, db, 1)

	_, err := svc.FileReport(context.Background(), p.ID, 2, "   ", "")
	assert.True(t, errors.Is(err, pkg.ErrValidation))
}

// 举报只是信号，不会自动把档案变成隐藏
func TestFileReport_DoesNotHide(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.FileReport(ctx, p.ID, uint64(i+1), model.ReportReasonInappropriate, "")
		require.NoError(t, err)
	}

	var got model.ColorProfile
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.True(t, got.Visible)
}

func TestFileReport_MissingProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)

	_, err := svc.FileReport(context.Background(), 555, 2, model.ReportReasonOther, "")
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestToggleVisibility_RoundtripAndNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	hidden, err := svc.ToggleVisibility(ctx, p.ID, 9)
	require.NoError(t, err)
	assert.False(t, hidden)

	restored, err := svc.ToggleVisibility(ctx, p.ID, 9)
	require.NoError(t, err)
	assert.True(t, restored)

	_, err = svc.ToggleVisibility(ctx, 888, 9)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestToggleFeatured_RoundtripAndNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	on, err := svc.ToggleFeatured(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := svc.ToggleFeatured(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = svc.ToggleFeatured(ctx, 888)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestListUsers_ForBanPicker(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	ctx := context.Background()

	seedUser(t, db, "alice", false)
	seedUser(t, db, "mallory", true)

	list, err := svc.ListUsers(ctx, 0, 20)
	require.NoError(t, err)
	require.Len(t, list, 2)

	names := []string{list[0].Username, list[1].Username}
	assert.ElementsMatch(t, []string{"alice", "mallory"}, names)

	// 越界的分页参数回落到默认值，不报错
	list, err = svc.ListUsers(ctx, -5, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// 投递失败的事件留在待投递状态并累加重试，成功后标记已发送且不再被捞起
func TestOutboxRelayer_DrainMarksSentAndRetry(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	_, err := svc.FileReport(ctx, p.ID, 2, model.ReportReasonOther, "")
	require.NoError(t, err)

	failing := NewOutboxRelayer(db, func(ctx context.Context, ob *model.ModerationOutbox) error {
		return errors.New("broker down")
	})
	failing.drainOnce(ctx)

	var ob model.ModerationOutbox
	require.NoError(t, db.First(&ob).Error)
	assert.EqualValues(t, 0, ob.Status)
	assert.Equal(t, 1, ob.Retry)

	var sent []string
	ok := NewOutboxRelayer(db, func(ctx context.Context, ob *model.ModerationOutbox) error {
		sent = append(sent, ob.EventType)
		return nil
	})
	ok.drainOnce(ctx)

	require.Equal(t, []string{model.ModEventReportFiled}, sent)
	require.NoError(t, db.First(&ob, ob.ID).Error)
	assert.EqualValues(t, 1, ob.Status)

	ok.drainOnce(ctx)
	assert.Len(t, sent, 1)
}

// 场景：两条举报 + 隐藏中的档案，驳回后举报清零且恢复可见
func TestDismissReports_Scenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	p := seedProfile(t, db, 1)
	ctx := context.Background()

	_, err := svc.FileReport(ctx, p.ID, 2, model.ReportReasonInappropriate, "")
	require.NoError(t, err)
	_, err = svc.FileReport(ctx, p.ID, 3, model.ReportReasonNotProfile, "")
	require.NoError(t, err)

	hidden, err := svc.ToggleVisibility(ctx, p.ID, 99)
	require.NoError(t, err)
	require.False(t, hidden)

	require.NoError(t, svc.DismissReports(ctx, p.ID, 99))

	reports, err := svc.ListReports(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, reports)

	var got model.ColorProfile
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.True(t, got.Visible)
}

func TestDeleteProfile_MissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)

	err := svc.DeleteProfile(context.Background(), 321, 99)
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestBanUser_OneWayAndProfileUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewModerationService(db)
	ctx := context.Background()

	u := seedUser(t, db, "bob", false)
	p := seedProfile(t, db, u.ID)

	require.NoError(t, svc.BanUser(ctx, u.ID))

	var gotU model.User
	require.NoError(t, db.First(&gotU, u.ID).Error)
	assert.True(t, gotU.Banned)

	// 封人不碰档案可见性
	var gotP model.ColorProfile
	require.NoError(t, db.First(&gotP, p.ID).Error)
	assert.True(t, gotP.Visible)

	assert.True(t, errors.Is(svc.BanUser(ctx, 777), pkg.ErrNotFound))
}
