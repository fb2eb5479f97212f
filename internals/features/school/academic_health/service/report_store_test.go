// file: internals/features/school/academic_health/service/report_store_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"madrasahku_backend/internals/constants"
	dto "madrasahku_backend/internals/features/school/academic_health/dto"
	m "madrasahku_backend/internals/features/school/academic_health/model"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

var testDBSeq int64

// newTestDB: SQLite in-memory per test. Satu koneksi saja supaya query
// paralel Hydrate tetap melihat database yang sama.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ahr_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&m.AcademicHealthReportModel{},
		&m.AhrCopyCheckModel{},
		&m.AhrClassDiaryCheckModel{},
		&m.AhrMorningCoachingModel{},
		&m.AhrEscalationDetailModel{},
		&m.AhrDefaulterModel{},
		&m.AhrActionsByCategoryModel{},
	))
	return db
}

func newTestStore(t *testing.T) *ReportStore {
	t.Helper()
	return NewReportStore(newTestDB(t), nil)
}

func ownerActor(userID int64) helperAuth.Actor {
	return helperAuth.Actor{UserID: userID, Role: constants.RoleTeacher, SiteID: 1}
}

func managerActor() helperAuth.Actor {
	return helperAuth.Actor{UserID: 999, Role: constants.RoleTeamManager, SiteID: 1}
}

func createReq() dto.CreateAcademicHealthReportRequest {
	return dto.CreateAcademicHealthReportRequest{
		ReportDate:       "2026-09-01",
		SiteID:           1,
		AssignedToUserID: 55,
		CheckMode:        m.CheckModeMSP,
	}
}

/* ======================= CreateOrFetch ======================= */

func TestCreateOrFetchSeedsDraft(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	agg, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)
	require.NotNil(t, agg)

	assert.Equal(t, m.ReportStatusDraft, agg.Status)
	assert.Equal(t, "2026-09-01", agg.ReportDate)
	assert.Equal(t, int64(55), agg.AssignedToUserID)
	assert.Equal(t, m.CheckModeMSP, agg.CheckMode)
	// Default awal: imam maghrib = penanggung jawab, transisi SMOOTH.
	require.NotNil(t, agg.MaghribSalahLedByID)
	assert.Equal(t, int64(55), *agg.MaghribSalahLedByID)
	assert.Equal(t, m.TransitionQualitySmooth, agg.Slot12TransitionQuality)
	assert.True(t, agg.Mhcp2AllTeachersPresent)
	assert.Equal(t, "To be filled in", agg.Mhcp2FocusToday)
	// Koleksi selalu [] (bukan null) di agregat.
	assert.NotNil(t, agg.CopyChecks)
	assert.Empty(t, agg.CopyChecks)
	assert.Nil(t, agg.MorningCoaching)
}

func TestCreateOrFetchIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)

	// Create kedua untuk (tanggal, user, site) sama — checkMode berbeda
	// sengaja DIABAIKAN: draft yang berjalan tidak direset.
	again := createReq()
	again.CheckMode = m.CheckModeMorningCoaching
	second, err := store.CreateOrFetch(ctx, again, 55)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, m.CheckModeMSP, second.CheckMode)

	var count int64
	require.NoError(t, store.DB.Model(&m.AcademicHealthReportModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateOrFetchDistinctTriples(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)

	otherDay := createReq()
	otherDay.ReportDate = "2026-09-02"
	b, err := store.CreateOrFetch(ctx, otherDay, 55)
	require.NoError(t, err)

	otherSite := createReq()
	otherSite.SiteID = 2
	c, err := store.CreateOrFetch(ctx, otherSite, 55)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestCreateOrFetchInvalidDate(t *testing.T) {
	store := newTestStore(t)
	req := createReq()
	req.ReportDate = "bukan-tanggal"

	_, err := store.CreateOrFetch(context.Background(), req, 55)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

/* ======================= Attendance bridge ======================= */

type stubBridge struct {
	ref *CheckinRef
	err error
}

func (b stubBridge) FindCheckin(_ context.Context, _ int64, _ time.Time) (*CheckinRef, error) {
	return b.ref, b.err
}

func TestCreateBackfillsCheckin(t *testing.T) {
	checkinAt := time.Date(2026, 9, 1, 6, 45, 0, 0, time.UTC)
	store := NewReportStore(newTestDB(t), stubBridge{ref: &CheckinRef{ID: 301, Time: checkinAt}})

	agg, err := store.CreateOrFetch(context.Background(), createReq(), 55)
	require.NoError(t, err)
	require.NotNil(t, agg.CheckinID)
	assert.Equal(t, int64(301), *agg.CheckinID)
	require.NotNil(t, agg.CheckinTime)
	assert.Equal(t, checkinAt.Format(time.RFC3339), *agg.CheckinTime)
}

func TestCreateSurvivesBridgeFailure(t *testing.T) {
	store := NewReportStore(newTestDB(t), stubBridge{err: errors.New("attendance down")})

	agg, err := store.CreateOrFetch(context.Background(), createReq(), 55)
	require.NoError(t, err, "bridge gagal tidak boleh menggagalkan create")
	assert.Nil(t, agg.CheckinID)
	assert.Nil(t, agg.CheckinTime)
}

/* ======================= Patch ======================= */

func TestPatchReplacesChildSetWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	agg, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)

	five := make([]dto.CopyCheckInput, 0, 5)
	for i := int64(1); i <= 5; i++ {
		five = append(five, dto.CopyCheckInput{StudentID: i, CopyTypes: m.StringList{"NOTES"}})
	}
	_, err = store.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{CopyChecks: &five}, ownerActor(55))
	require.NoError(t, err)

	three := []dto.CopyCheckInput{
		{StudentID: 7}, {StudentID: 8}, {StudentID: 9},
	}
	got, err := store.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{CopyChecks: &three}, ownerActor(55))
	require.NoError(t, err)

	require.Len(t, got.CopyChecks, 3, "replace-set: 5 baris lama diganti 3 baris baru")
	assert.Equal(t, int64(7), got.CopyChecks[0].StudentID)
	assert.Equal(t, int64(9), got.CopyChecks[2].StudentID)

	var count int64
	require.NoError(t, store.DB.Model(&m.AhrCopyCheckModel{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestPatchDropsChildRowsWithoutFK(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	agg, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)

	copies := []dto.CopyCheckInput{{StudentID: 0, Note: "tanpa siswa"}, {StudentID: 4}}
	escalations := []dto.EscalationDetailInput{{EscalationID: 0}, {EscalationID: 42, Status: m.EscalationDetailResolved}}
	actions := []dto.ActionsByCategoryInput{{Category: ""}, {Category: m.DefaulterTypeLateSubmission, Actions: m.StringList{"VERBAL_WARNING"}}}

	got, err := store.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{
		CopyChecks:        &copies,
		EscalationDetails: &escalations,
		ActionsByCategory: &actions,
	}, ownerActor(55))
	require.NoError(t, err)

	require.Len(t, got.CopyChecks, 1)
	assert.Equal(t, int64(4), got.CopyChecks[0].StudentID)
	require.Len(t, got.EscalationDetails, 1)
	assert.Equal(t, int64(42), got.EscalationDetails[0].EscalationID)
	require.Len(t, got.ActionsByCategory, 1)
	assert.Equal(t, m.DefaulterTypeLateSubmission, got.ActionsByCategory[0].Category)
}

func TestPatchScalarFieldsAndAbsentCollectionsUntouched(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	agg, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)

	five := []dto.CopyCheckInput{{StudentID: 1}, {StudentID: 2}, {StudentID: 3}, {StudentID: 4}, {StudentID: 5}}
	_, err = store.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{CopyChecks: &five}, ownerActor(55))
	require.NoError(t, err)

	focus := "Tajweed revision"
	confirmed := true
	absentIDs := m.Int64List{3, 7, 3, 9}
	got, err := store.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{
		Mhcp2FocusToday:       &focus,
		AttendanceConfirmed:   &confirmed,
		Mhcp2AbsentTeacherIDs: &absentIDs,
	}, ownerActor(55))
	require.NoError(t, err)

	assert.Equal(t, "Tajweed revision", got.Mhcp2FocusToday)
	assert.True(t, got.AttendanceConfirmed)
	// Disimpan apa adanya (dedup hanya saat validasi).
	assert.Equal(t, m.Int64List{3, 7, 3, 9}, got.Mhcp2AbsentTeacherIDs)
	// Koleksi yang tidak ada di payload tidak tersentuh.
	assert.Len(t, got.CopyChecks, 5)
}

func TestPatchAuthorization(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	agg, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)

	note := "bukan punyaku"
	_, err = store.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{Section1Comment: &note}, ownerActor(77))
	var ferr *fiber.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fiber.StatusForbidden, ferr.Code)

	// Manajer boleh mengubah laporan orang lain.
	_, err = store.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{Section1Comment: &note}, managerActor())
	require.NoError(t, err)
}

func TestPatchNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Patch(context.Background(), 12345, &dto.PatchAcademicHealthReportRequest{}, ownerActor(55))
	var ferr *fiber.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fiber.StatusNotFound, ferr.Code)
}

func TestPatchRejectsUnparseableCheckinTime(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	agg, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)

	bad := "kemarin sore"
	_, err = store.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{CheckinTime: &bad}, ownerActor(55))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

/* ======================= Hydrate / SetStatus / List ======================= */

func TestHydrateMissingReport(t *testing.T) {
	store := newTestStore(t)
	agg, err := store.Hydrate(context.Background(), 777)
	require.NoError(t, err)
	assert.Nil(t, agg)
}

func TestSetStatusUnconditional(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	agg, err := store.CreateOrFetch(ctx, createReq(), 55)
	require.NoError(t, err)

	require.NoError(t, store.SetStatus(ctx, agg.ID, m.ReportStatusApproved))
	got, err := store.Hydrate(ctx, agg.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusApproved, got.Status)
}

func TestListFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		req := createReq()
		req.ReportDate = fmt.Sprintf("2026-09-%02d", day)
		_, err := store.CreateOrFetch(ctx, req, 55)
		require.NoError(t, err)
	}
	other := createReq()
	other.AssignedToUserID = 77
	created, err := store.CreateOrFetch(ctx, other, 77)
	require.NoError(t, err)
	require.NoError(t, store.SetStatus(ctx, created.ID, m.ReportStatusSubmitted))

	rows, total, err := store.List(ctx, ListReportsFilter{SiteID: 1, AssignedTo: 55, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 3)
	// Terbaru dulu.
	assert.Equal(t, "2026-09-03", dto.FormatReportDate(rows[0].AhrReportDate))

	rows, total, err = store.List(ctx, ListReportsFilter{Status: m.ReportStatusSubmitted, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(77), rows[0].AhrAssignedToUserID)

	rows, total, err = store.List(ctx, ListReportsFilter{
		AssignedTo: 55, DateFrom: "2026-09-02", DateTo: "2026-09-03", Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)
}

/* ======================= Helpers ======================= */

func TestNormalizeReportDate(t *testing.T) {
	for _, raw := range []string{
		"2026-09-01",
		"2026-09-01T18:30:00Z",
		"2026-09-01 18:30:00",
	} {
		d, err := NormalizeReportDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, "2026-09-01", dto.FormatReportDate(d), raw)
	}

	_, err := NormalizeReportDate("01/09/2026")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = NormalizeReportDate("   ")
	require.ErrorAs(t, err, &verr)
}

func TestCoerceCheckinTime(t *testing.T) {
	got, err := coerceCheckinTime("2026-09-01T06:45:00Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 6, got.UTC().Hour())

	got, err = coerceCheckinTime("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = coerceCheckinTime("nanti")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCanModifyReport(t *testing.T) {
	assert.True(t, CanModifyReport(55, ownerActor(55)))
	assert.False(t, CanModifyReport(55, ownerActor(77)))
	assert.True(t, CanModifyReport(55, managerActor()))
	assert.True(t, CanModifyReport(55, helperAuth.Actor{UserID: 1, Role: constants.RoleAdmin}))
}
