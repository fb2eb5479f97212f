// file: internals/features/school/academic_health/controller/academic_health_report_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	dto "madrasahku_backend/internals/features/school/academic_health/dto"
	m "madrasahku_backend/internals/features/school/academic_health/model"
	ahrSvc "madrasahku_backend/internals/features/school/academic_health/service"
	attSvc "madrasahku_backend/internals/features/school/attendance/service"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

/* ========================================================
   Controller
======================================================== */

type AcademicHealthReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Store     *ahrSvc.ReportStore
	Lifecycle *ahrSvc.Lifecycle
}

func NewAcademicHealthReportController(db *gorm.DB) *AcademicHealthReportController {
	store := ahrSvc.NewReportStore(db, attendanceBridge{svc: attSvc.NewCheckinService(db)})
	return &AcademicHealthReportController{
		DB:        db,
		Validator: validator.New(),
		Store:     store,
		Lifecycle: ahrSvc.NewLifecycle(store),
	}
}

/* ========================================================
   Helpers
======================================================== */

func reportIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID laporan tidak valid")
	}
	return id, nil
}

// respondError memetakan error service ke envelope JSON standar.
func respondError(c *fiber.Ctx, err error) error {
	var ve *ahrSvc.ValidationError
	if errors.As(err, &ve) {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", ve.Messages)
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

/* ========================================================
   Handlers
======================================================== */

// POST /academic-health-reports
// Create-or-fetch: satu laporan per (tanggal, user, site).
func (ctl *AcademicHealthReportController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateAcademicHealthReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctl.Lifecycle.Create(c.UserContext(), req, actor)
	if err != nil {
		return respondError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Laporan siap", resp)
}

// GET /academic-health-reports/:id
func (ctl *AcademicHealthReportController) GetByID(c *fiber.Ctx) error {
	if _, err := helperAuth.GetActor(c); err != nil {
		return err
	}
	id, err := reportIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := ctl.Store.Hydrate(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return helper.Error(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
	}
	return helper.Success(c, "OK", resp)
}

// GET /academic-health-reports
// Query: assigned_to, status, date_from, date_to, page, per_page.
// Non-manajer hanya melihat laporannya sendiri.
func (ctl *AcademicHealthReportController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	f := ahrSvc.ListReportsFilter{
		SiteID:   actor.SiteID,
		Status:   m.ReportStatus(strings.TrimSpace(c.Query("status"))),
		DateFrom: strings.TrimSpace(c.Query("date_from")),
		DateTo:   strings.TrimSpace(c.Query("date_to")),
		Offset:   paging.Offset,
		Limit:    paging.Limit,
	}
	if constants.IsManagerRole(actor.Role) {
		if v, err := strconv.ParseInt(c.Query("assigned_to"), 10, 64); err == nil && v > 0 {
			f.AssignedTo = v
		}
	} else {
		f.AssignedTo = actor.UserID
	}

	rows, total, err := ctl.Store.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.AcademicHealthReportListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NewAcademicHealthReportListItem(row))
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging, len(items)))
}

// PATCH /academic-health-reports/:id
// Draft boleh belum lengkap — Validation Gate tidak jalan di sini.
func (ctl *AcademicHealthReportController) Patch(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := reportIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.PatchAcademicHealthReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctl.Lifecycle.Patch(c.UserContext(), id, &req, actor)
	if err != nil {
		return respondError(c, err)
	}
	return helper.Success(c, "Laporan diperbarui", resp)
}

// POST /academic-health-reports/:id/submit
// Body opsional: patch terakhir yang di-merge sebelum validasi.
func (ctl *AcademicHealthReportController) Submit(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := reportIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.PatchAcademicHealthReportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := ctl.Validator.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	resp, err := ctl.Lifecycle.Submit(c.UserContext(), id, &req, actor)
	if err != nil {
		return respondError(c, err)
	}
	return helper.Success(c, "Laporan disubmit", resp)
}

// POST /academic-health-reports/:id/approve (manajer)
func (ctl *AcademicHealthReportController) Approve(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := reportIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := ctl.Lifecycle.Approve(c.UserContext(), id, actor)
	if err != nil {
		return respondError(c, err)
	}
	return helper.Success(c, "Laporan disetujui", resp)
}

// POST /academic-health-reports/:id/reopen (manajer)
func (ctl *AcademicHealthReportController) Reopen(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := reportIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := ctl.Lifecycle.Reopen(c.UserContext(), id, actor)
	if err != nil {
		return respondError(c, err)
	}
	return helper.Success(c, "Laporan dibuka kembali", resp)
}
