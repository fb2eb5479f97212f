// file: internals/features/school/academic_health/service/lifecycle.go
package service

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"madrasahku_backend/internals/constants"
	dto "madrasahku_backend/internals/features/school/academic_health/dto"
	m "madrasahku_backend/internals/features/school/academic_health/model"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

/* =========================================================
   Lifecycle — state machine laporan:

     DRAFT    --submit(valid)-->   SUBMITTED
     SUBMITTED --approve(manajer)--> APPROVED
     SUBMITTED --reopen(manajer)-->  REOPENED
     APPROVED  --reopen(manajer)-->  REOPENED
     REOPENED  == DRAFT untuk edit & submit ulang.

   approve/reopen sengaja TIDAK memeriksa status sebelumnya
   (perilaku produk yang dipertahankan — lihat DESIGN.md).
========================================================= */

type Lifecycle struct {
	Store *ReportStore
}

func NewLifecycle(store *ReportStore) *Lifecycle {
	return &Lifecycle{Store: store}
}

// Create: create-or-fetch per (tanggal, user, site). Identitas wajib sudah
// divalidasi DTO-nya oleh controller; di sini tinggal delegasi ke store.
func (l *Lifecycle) Create(ctx context.Context, req dto.CreateAcademicHealthReportRequest, actor helperAuth.Actor) (*dto.AcademicHealthReportResponse, error) {
	if req.AssignedToUserID <= 0 || req.SiteID <= 0 || req.CheckMode == "" {
		return nil, NewValidationError("assignedToUserId, siteId, dan checkMode wajib diisi")
	}
	return l.Store.CreateOrFetch(ctx, req, actor.UserID)
}

// Patch: delegasi penuh ke store (otorisasi di sana). Draft boleh belum
// lengkap — Validation Gate TIDAK dijalankan di sini.
func (l *Lifecycle) Patch(ctx context.Context, reportID int64, req *dto.PatchAcademicHealthReportRequest, actor helperAuth.Actor) (*dto.AcademicHealthReportResponse, error) {
	return l.Store.Patch(ctx, reportID, req, actor)
}

// Submit: merge payload di memori, jalankan gate, baru tulis. Gagal validasi
// = nol tulisan.
func (l *Lifecycle) Submit(ctx context.Context, reportID int64, req *dto.PatchAcademicHealthReportRequest, actor helperAuth.Actor) (*dto.AcademicHealthReportResponse, error) {
	agg, err := l.Store.Hydrate(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Laporan tidak ditemukan")
	}

	isManager := constants.IsManagerRole(actor.Role)

	// Guard idempoten: owner tidak boleh submit ulang laporan yang sudah
	// SUBMITTED; manajer boleh memaksa (validasi tetap jalan lagi).
	if agg.Status == m.ReportStatusSubmitted && !isManager {
		return nil, NewValidationError("Laporan sudah disubmit")
	}
	if actor.UserID != agg.AssignedToUserID && !isManager {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya pemilik laporan atau manajer yang boleh submit")
	}

	// Merge payload menang atas agregat tersimpan, lalu periksa.
	merged := *agg
	if req != nil {
		req.Apply(&merged)
	}
	if violations := ValidateReport(&merged); len(violations) > 0 {
		return nil, &ValidationError{Messages: violations}
	}

	// Persist isi + transisi lewat mesin patch yang sama, lalu paksa status
	// sekali lagi (jaga-jaga kalau payload tidak membawa status).
	if req == nil {
		req = &dto.PatchAcademicHealthReportRequest{}
	}
	submitted := m.ReportStatusSubmitted
	req.Status = &submitted
	if _, err := l.Store.Patch(ctx, reportID, req, actor); err != nil {
		return nil, err
	}
	if err := l.Store.SetStatus(ctx, reportID, m.ReportStatusSubmitted); err != nil {
		return nil, err
	}

	return l.Store.Hydrate(ctx, reportID)
}

// Approve: khusus manajer; transisi tanpa cek status sebelumnya.
func (l *Lifecycle) Approve(ctx context.Context, reportID int64, actor helperAuth.Actor) (*dto.AcademicHealthReportResponse, error) {
	return l.forceStatus(ctx, reportID, m.ReportStatusApproved, actor)
}

// Reopen: khusus manajer; laporan kembali bisa diedit dan disubmit ulang.
func (l *Lifecycle) Reopen(ctx context.Context, reportID int64, actor helperAuth.Actor) (*dto.AcademicHealthReportResponse, error) {
	return l.forceStatus(ctx, reportID, m.ReportStatusReopened, actor)
}

func (l *Lifecycle) forceStatus(ctx context.Context, reportID int64, status m.ReportStatus, actor helperAuth.Actor) (*dto.AcademicHealthReportResponse, error) {
	if !constants.IsManagerRole(actor.Role) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya manajer yang boleh mengubah status laporan")
	}
	agg, err := l.Store.Hydrate(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Laporan tidak ditemukan")
	}
	if err := l.Store.SetStatus(ctx, reportID, status); err != nil {
		return nil, err
	}
	return l.Store.Hydrate(ctx, reportID)
}
