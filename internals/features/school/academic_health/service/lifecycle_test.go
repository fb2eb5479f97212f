// file: internals/features/school/academic_health/service/lifecycle_test.go
package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "madrasahku_backend/internals/features/school/academic_health/dto"
	m "madrasahku_backend/internals/features/school/academic_health/model"
)

func newTestLifecycle(t *testing.T) *Lifecycle {
	t.Helper()
	return NewLifecycle(newTestStore(t))
}

// submittableDraft: create + patch sampai laporan morning-coaching lolos gate.
func submittableDraft(t *testing.T, lc *Lifecycle) int64 {
	t.Helper()
	ctx := context.Background()

	req := createReq()
	req.CheckMode = m.CheckModeMorningCoaching
	agg, err := lc.Create(ctx, req, ownerActor(55))
	require.NoError(t, err)

	checkinID := int64(301)
	checkinTime := "2026-09-01T06:45:00Z"
	yes := true
	coaching := dto.MorningCoachingInput{
		Absentees: m.Int64List{12},
		State:     "All teachers coached on lesson planning",
	}
	name := "Ustadh Kareem"
	blob := "signatures/55.png"
	_, err = lc.Patch(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{
		CheckinID:           &checkinID,
		CheckinTime:         &checkinTime,
		AttendanceConfirmed: &yes,
		Slot12NmriModerated: &yes,
		MorningCoaching:     &coaching,
		SelfDayClose:        &yes,
		SignatureName:       &name,
		SignatureBlobPath:   &blob,
	}, ownerActor(55))
	require.NoError(t, err)
	return agg.ID
}

func TestLifecycleCreateRequiresIdentity(t *testing.T) {
	lc := newTestLifecycle(t)
	req := createReq()
	req.SiteID = 0
	_, err := lc.Create(context.Background(), req, ownerActor(55))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLifecycleSubmitHappyPath(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()
	id := submittableDraft(t, lc)

	got, err := lc.Submit(ctx, id, nil, ownerActor(55))
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusSubmitted, got.Status)
	require.NotNil(t, got.MorningCoaching)
	assert.Equal(t, m.Int64List{12}, got.MorningCoaching.Absentees)
}

func TestLifecycleSubmitMergesPayloadBeforeGate(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()
	id := submittableDraft(t, lc)

	// Draft tersimpan valid; payload submit mencabut tanda tangan — gate
	// harus menilai hasil MERGE, jadi submit gagal.
	empty := ""
	_, err := lc.Submit(ctx, id, &dto.PatchAcademicHealthReportRequest{
		SignatureName: &empty,
	}, ownerActor(55))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Signature name and signature are both required.")
}

func TestLifecycleSubmitRejectsClearedCheckin(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()
	id := submittableDraft(t, lc)

	// Payload yang mengosongkan check-in tidak boleh lolos gate — tanpa
	// penjagaan ini laporan bisa SUBMITTED dengan checkin_time NULL.
	zero := int64(0)
	empty := ""
	_, err := lc.Submit(ctx, id, &dto.PatchAcademicHealthReportRequest{
		CheckinID:   &zero,
		CheckinTime: &empty,
	}, ownerActor(55))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Please scan your attendance before submitting the report.")

	after, err := lc.Store.Hydrate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusDraft, after.Status)
	require.NotNil(t, after.CheckinTime)
}

func TestLifecycleFailedSubmitWritesNothing(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()

	req := createReq()
	req.CheckMode = m.CheckModeMorningCoaching
	agg, err := lc.Create(ctx, req, ownerActor(55))
	require.NoError(t, err)

	focus := "Changed focus in the failed payload"
	_, err = lc.Submit(ctx, agg.ID, &dto.PatchAcademicHealthReportRequest{
		Mhcp2FocusToday: &focus,
	}, ownerActor(55))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Messages)

	// Tidak ada tulisan sama sekali: status dan isi tetap seperti semula.
	after, err := lc.Store.Hydrate(ctx, agg.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusDraft, after.Status)
	assert.Equal(t, "To be filled in", after.Mhcp2FocusToday)
}

func TestLifecycleSubmitIdempotencyGuard(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()
	id := submittableDraft(t, lc)

	_, err := lc.Submit(ctx, id, nil, ownerActor(55))
	require.NoError(t, err)

	// Owner tidak boleh submit ulang laporan yang sudah SUBMITTED.
	_, err = lc.Submit(ctx, id, nil, ownerActor(55))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Laporan sudah disubmit"}, verr.Messages)

	// Manajer boleh memaksa submit ulang (validasi tetap jalan).
	got, err := lc.Submit(ctx, id, nil, managerActor())
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusSubmitted, got.Status)
}

func TestLifecycleSubmitAuthorization(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()
	id := submittableDraft(t, lc)

	_, err := lc.Submit(ctx, id, nil, ownerActor(77))
	var ferr *fiber.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fiber.StatusForbidden, ferr.Code)
}

func TestLifecycleSubmitNotFound(t *testing.T) {
	lc := newTestLifecycle(t)
	_, err := lc.Submit(context.Background(), 4242, nil, ownerActor(55))
	var ferr *fiber.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fiber.StatusNotFound, ferr.Code)
}

func TestLifecycleApproveManagerOnly(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()
	id := submittableDraft(t, lc)

	_, err := lc.Approve(ctx, id, ownerActor(55))
	var ferr *fiber.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fiber.StatusForbidden, ferr.Code)

	got, err := lc.Approve(ctx, id, managerActor())
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusApproved, got.Status)
}

func TestLifecycleApproveSkipsStatusPrecondition(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()

	agg, err := lc.Create(ctx, createReq(), ownerActor(55))
	require.NoError(t, err)

	// Approve langsung dari DRAFT — transisi sengaja tanpa cek status awal.
	got, err := lc.Approve(ctx, agg.ID, managerActor())
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusApproved, got.Status)
}

func TestLifecycleReopenThenResubmit(t *testing.T) {
	lc := newTestLifecycle(t)
	ctx := context.Background()
	id := submittableDraft(t, lc)

	_, err := lc.Submit(ctx, id, nil, ownerActor(55))
	require.NoError(t, err)

	got, err := lc.Reopen(ctx, id, managerActor())
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusReopened, got.Status)

	// Laporan yang dibuka kembali bisa diedit owner dan disubmit ulang.
	focus := "Revised focus after reopen"
	_, err = lc.Patch(ctx, id, &dto.PatchAcademicHealthReportRequest{Mhcp2FocusToday: &focus}, ownerActor(55))
	require.NoError(t, err)

	got, err = lc.Submit(ctx, id, nil, ownerActor(55))
	require.NoError(t, err)
	assert.Equal(t, m.ReportStatusSubmitted, got.Status)
	assert.Equal(t, "Revised focus after reopen", got.Mhcp2FocusToday)
}

func TestLifecycleReopenNotFound(t *testing.T) {
	lc := newTestLifecycle(t)
	_, err := lc.Reopen(context.Background(), 9001, managerActor())
	var ferr *fiber.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, fiber.StatusNotFound, ferr.Code)
}
