// file: internals/features/school/academic_health/service/report_store.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	dto "madrasahku_backend/internals/features/school/academic_health/dto"
	m "madrasahku_backend/internals/features/school/academic_health/model"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

// CheckinRef adalah hasil pencarian check-in dari Attendance Bridge.
type CheckinRef struct {
	ID   int64
	Time time.Time
}

// AttendanceBridge dicari sekali saat create (best-effort) untuk mengisi
// kolom check-in. Gagal/nil TIDAK boleh menggagalkan pembuatan laporan.
type AttendanceBridge interface {
	FindCheckin(ctx context.Context, userID int64, date time.Time) (*CheckinRef, error)
}

/* =========================================================
   ReportStore — persistence + perakitan agregat.
   Tidak ada aturan bisnis di sini selain koersi struktural.
========================================================= */

type ReportStore struct {
	DB     *gorm.DB
	Bridge AttendanceBridge // boleh nil
}

func NewReportStore(db *gorm.DB, bridge AttendanceBridge) *ReportStore {
	return &ReportStore{DB: db, Bridge: bridge}
}

// Hydrate memuat parent + enam koleksi anak (paralel) dan merakit agregat.
// Mengembalikan (nil, nil) jika parent tidak ada.
func (s *ReportStore) Hydrate(ctx context.Context, reportID int64) (*dto.AcademicHealthReportResponse, error) {
	var parent m.AcademicHealthReportModel
	if err := s.DB.WithContext(ctx).First(&parent, "ahr_id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var (
		copies      []m.AhrCopyCheckModel
		classChecks []m.AhrClassDiaryCheckModel
		coachings   []m.AhrMorningCoachingModel
		escalations []m.AhrEscalationDetailModel
		defaulters  []m.AhrDefaulterModel
		actions     []m.AhrActionsByCategoryModel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("ahr_copy_check_report_id = ?", reportID).
			Order("ahr_copy_check_id").Find(&copies).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("ahr_class_diary_check_report_id = ?", reportID).
			Order("ahr_class_diary_check_id").Find(&classChecks).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("ahr_morning_coaching_report_id = ?", reportID).
			Order("ahr_morning_coaching_id").Limit(1).Find(&coachings).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("ahr_escalation_detail_report_id = ?", reportID).
			Order("ahr_escalation_detail_id").Find(&escalations).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("ahr_defaulter_report_id = ?", reportID).
			Order("ahr_defaulter_id").Find(&defaulters).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("ahr_actions_by_category_report_id = ?", reportID).
			Order("ahr_actions_by_category_id").Find(&actions).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var coaching *m.AhrMorningCoachingModel
	if len(coachings) > 0 {
		coaching = &coachings[0]
	}

	resp := dto.NewAcademicHealthReportResponse(parent, copies, classChecks, coaching, escalations, defaulters, actions)
	return &resp, nil
}

// CreateOrFetch: satu laporan per (tanggal, user, site). Kalau sudah ada,
// kembalikan apa adanya — draft yang berjalan tidak pernah di-reset.
func (s *ReportStore) CreateOrFetch(ctx context.Context, req dto.CreateAcademicHealthReportRequest, createdByUserID int64) (*dto.AcademicHealthReportResponse, error) {
	date, err := NormalizeReportDate(req.ReportDate)
	if err != nil {
		return nil, err
	}

	var existing m.AcademicHealthReportModel
	err = s.DB.WithContext(ctx).
		Where("ahr_report_date = ? AND ahr_assigned_to_user_id = ? AND ahr_site_id = ?",
			date, req.AssignedToUserID, req.SiteID).
		First(&existing).Error
	if err == nil {
		return s.Hydrate(ctx, existing.AhrID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	assignee := req.AssignedToUserID
	row := m.AcademicHealthReportModel{
		AhrReportDate:              date,
		AhrAssignedToUserID:        assignee,
		AhrSiteID:                  req.SiteID,
		AhrStatus:                  m.ReportStatusDraft,
		AhrCheckMode:               req.CheckMode,
		AhrMaghribSalahLedByID:     &assignee,
		AhrSlot12TransitionQuality: m.TransitionQualitySmooth,
		AhrMhcp2AllTeachersPresent: true,
		AhrMhcp2FocusToday:         "To be filled in",
		AhrMhcp2AbsentTeacherIDs:   m.Int64List{},
		AhrMhcp2Substitutions:      m.SubstitutionList{},
		AhrEscalationsHandledIDs:   m.Int64List{},
		AhrCreatedByUserID:         createdByUserID,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		// Balapan create-or-fetch: kalau unik bentrok, ambil baris yang menang.
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "uq_ahr_date_user_site") || strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			if ferr := s.DB.WithContext(ctx).
				Where("ahr_report_date = ? AND ahr_assigned_to_user_id = ? AND ahr_site_id = ?",
					date, req.AssignedToUserID, req.SiteID).
				First(&existing).Error; ferr == nil {
				return s.Hydrate(ctx, existing.AhrID)
			}
		}
		return nil, err
	}

	s.backfillCheckin(ctx, &row)

	return s.Hydrate(ctx, row.AhrID)
}

// backfillCheckin: advisory — error apa pun hanya di-log, creation tetap sukses.
func (s *ReportStore) backfillCheckin(ctx context.Context, row *m.AcademicHealthReportModel) {
	if s.Bridge == nil {
		return
	}
	ref, err := s.Bridge.FindCheckin(ctx, row.AhrAssignedToUserID, time.Time(row.AhrReportDate))
	if err != nil {
		log.Printf("[WARN] AHR %d: lookup check-in gagal (diabaikan): %v", row.AhrID, err)
		return
	}
	if ref == nil {
		return
	}
	if err := s.DB.WithContext(ctx).Model(&m.AcademicHealthReportModel{}).
		Where("ahr_id = ?", row.AhrID).
		Updates(map[string]any{
			"ahr_checkin_id":   ref.ID,
			"ahr_checkin_time": ref.Time,
		}).Error; err != nil {
		log.Printf("[WARN] AHR %d: backfill check-in gagal (diabaikan): %v", row.AhrID, err)
	}
}

// Patch: update parent + replace-set per koleksi anak yang hadir di payload,
// semuanya dalam SATU transaksi. Baris anak tanpa FK wajib di-drop diam-diam.
func (s *ReportStore) Patch(ctx context.Context, reportID int64, req *dto.PatchAcademicHealthReportRequest, actor helperAuth.Actor) (*dto.AcademicHealthReportResponse, error) {
	var parent m.AcademicHealthReportModel
	if err := s.DB.WithContext(ctx).First(&parent, "ahr_id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return nil, err
	}
	if !CanModifyReport(parent.AhrAssignedToUserID, actor) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya pemilik laporan atau manajer yang boleh mengubah laporan ini")
	}

	updates, err := buildParentUpdates(req)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates["ahr_updated_at"] = time.Now()
		if err := tx.Model(&m.AcademicHealthReportModel{}).
			Where("ahr_id = ?", reportID).
			Updates(updates).Error; err != nil {
			return err
		}

		if req.CopyChecks != nil {
			if err := tx.Where("ahr_copy_check_report_id = ?", reportID).
				Delete(&m.AhrCopyCheckModel{}).Error; err != nil {
				return err
			}
			rows := make([]m.AhrCopyCheckModel, 0, len(*req.CopyChecks))
			for _, in := range *req.CopyChecks {
				if in.StudentID <= 0 {
					continue // tanpa FK — drop
				}
				rows = append(rows, in.ToModel(reportID))
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if req.ClassChecks != nil {
			if err := tx.Where("ahr_class_diary_check_report_id = ?", reportID).
				Delete(&m.AhrClassDiaryCheckModel{}).Error; err != nil {
				return err
			}
			rows := make([]m.AhrClassDiaryCheckModel, 0, len(*req.ClassChecks))
			for _, in := range *req.ClassChecks {
				if in.ClassID <= 0 {
					continue
				}
				rows = append(rows, in.ToModel(reportID))
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if req.MorningCoaching != nil {
			if err := tx.Where("ahr_morning_coaching_report_id = ?", reportID).
				Delete(&m.AhrMorningCoachingModel{}).Error; err != nil {
				return err
			}
			row := req.MorningCoaching.ToModel(reportID)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if req.EscalationDetails != nil {
			if err := tx.Where("ahr_escalation_detail_report_id = ?", reportID).
				Delete(&m.AhrEscalationDetailModel{}).Error; err != nil {
				return err
			}
			rows := make([]m.AhrEscalationDetailModel, 0, len(*req.EscalationDetails))
			for _, in := range *req.EscalationDetails {
				if in.EscalationID <= 0 {
					continue
				}
				rows = append(rows, in.ToModel(reportID))
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if req.Defaulters != nil {
			if err := tx.Where("ahr_defaulter_report_id = ?", reportID).
				Delete(&m.AhrDefaulterModel{}).Error; err != nil {
				return err
			}
			rows := make([]m.AhrDefaulterModel, 0, len(*req.Defaulters))
			for _, in := range *req.Defaulters {
				if in.StudentID <= 0 {
					continue
				}
				rows = append(rows, in.ToModel(reportID))
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if req.ActionsByCategory != nil {
			if err := tx.Where("ahr_actions_by_category_report_id = ?", reportID).
				Delete(&m.AhrActionsByCategoryModel{}).Error; err != nil {
				return err
			}
			rows := make([]m.AhrActionsByCategoryModel, 0, len(*req.ActionsByCategory))
			for _, in := range *req.ActionsByCategory {
				if strings.TrimSpace(string(in.Category)) == "" {
					continue
				}
				rows = append(rows, in.ToModel(reportID))
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return s.Hydrate(ctx, reportID)
}

// SetStatus menulis status + updated_at tanpa syarat. Otorisasi/validasi
// adalah urusan pemanggil.
func (s *ReportStore) SetStatus(ctx context.Context, reportID int64, status m.ReportStatus) error {
	return s.DB.WithContext(ctx).Model(&m.AcademicHealthReportModel{}).
		Where("ahr_id = ?", reportID).
		Updates(map[string]any{
			"ahr_status":     status,
			"ahr_updated_at": time.Now(),
		}).Error
}

/* ======================= List (dashboard) ======================= */

type ListReportsFilter struct {
	SiteID     int64
	AssignedTo int64
	Status     m.ReportStatus
	DateFrom   string
	DateTo     string
	Offset     int
	Limit      int
}

func (s *ReportStore) List(ctx context.Context, f ListReportsFilter) ([]m.AcademicHealthReportModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&m.AcademicHealthReportModel{})
	if f.SiteID > 0 {
		q = q.Where("ahr_site_id = ?", f.SiteID)
	}
	if f.AssignedTo > 0 {
		q = q.Where("ahr_assigned_to_user_id = ?", f.AssignedTo)
	}
	if f.Status != "" {
		q = q.Where("ahr_status = ?", f.Status)
	}
	if f.DateFrom != "" {
		if d, err := NormalizeReportDate(f.DateFrom); err == nil {
			q = q.Where("ahr_report_date >= ?", d)
		}
	}
	if f.DateTo != "" {
		if d, err := NormalizeReportDate(f.DateTo); err == nil {
			q = q.Where("ahr_report_date <= ?", d)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []m.AcademicHealthReportModel
	if err := q.Order("ahr_report_date DESC, ahr_id DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* ======================= Helpers ======================= */

// CanModifyReport: owner atau role manajer.
func CanModifyReport(assignedToUserID int64, actor helperAuth.Actor) bool {
	return actor.UserID == assignedToUserID || constants.IsManagerRole(actor.Role)
}

var reportDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeReportDate menerima "YYYY-MM-DD" atau string tanggal penuh dan
// menormalisasi ke tanggal (midnight UTC).
func NormalizeReportDate(raw string) (datatypes.Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return datatypes.Date{}, NewValidationError("Tanggal laporan wajib diisi")
	}
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
		}
	}
	return datatypes.Date{}, NewValidationError("Tanggal laporan tidak valid: " + raw)
}

var checkinTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func coerceCheckinTime(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	for _, layout := range checkinTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, NewValidationError("Waktu check-in tidak valid: " + raw)
}

func buildParentUpdates(req *dto.PatchAcademicHealthReportRequest) (map[string]any, error) {
	updates := map[string]any{}
	if req.CheckinID != nil {
		updates["ahr_checkin_id"] = *req.CheckinID
	}
	if req.CheckinTime != nil {
		t, err := coerceCheckinTime(*req.CheckinTime)
		if err != nil {
			return nil, err
		}
		updates["ahr_checkin_time"] = t
	}
	if req.AttendanceConfirmed != nil {
		updates["ahr_attendance_confirmed"] = *req.AttendanceConfirmed
	}
	if req.MaghribSalahLedByID != nil {
		updates["ahr_maghrib_salah_led_by_id"] = *req.MaghribSalahLedByID
	}
	if req.Slot12TransitionQuality != nil {
		updates["ahr_slot12_transition_quality"] = *req.Slot12TransitionQuality
	}
	if req.Slot12NmriModerated != nil {
		updates["ahr_slot12_nmri_moderated"] = *req.Slot12NmriModerated
	}
	if req.Slot12Ads != nil {
		updates["ahr_slot12_ads"] = *req.Slot12Ads
	}
	if req.Mhcp2PresentCount != nil {
		updates["ahr_mhcp2_present_count"] = *req.Mhcp2PresentCount
	}
	if req.Mhcp2AllTeachersPresent != nil {
		updates["ahr_mhcp2_all_teachers_present"] = *req.Mhcp2AllTeachersPresent
	}
	if req.Mhcp2AbsentTeacherIDs != nil {
		updates["ahr_mhcp2_absent_teacher_ids"] = *req.Mhcp2AbsentTeacherIDs
	}
	if req.Mhcp2Substitutions != nil {
		updates["ahr_mhcp2_substitutions"] = *req.Mhcp2Substitutions
	}
	if req.Mhcp2FocusToday != nil {
		updates["ahr_mhcp2_focus_today"] = *req.Mhcp2FocusToday
	}
	if req.Mhcp2Discrepancies != nil {
		updates["ahr_mhcp2_discrepancies"] = *req.Mhcp2Discrepancies
	}
	if req.Section1Comment != nil {
		updates["ahr_section1_comment"] = *req.Section1Comment
	}
	if req.CheckMode != nil {
		updates["ahr_check_mode"] = *req.CheckMode
	}
	if req.EscalationsHandledIDs != nil {
		updates["ahr_escalations_handled_ids"] = *req.EscalationsHandledIDs
	}
	if req.SelfDayClose != nil {
		updates["ahr_self_day_close"] = *req.SelfDayClose
	}
	if req.FinalRemarks != nil {
		updates["ahr_final_remarks"] = *req.FinalRemarks
	}
	if req.SignatureName != nil {
		updates["ahr_signature_name"] = *req.SignatureName
	}
	if req.SignatureBlobPath != nil {
		updates["ahr_signature_blob_path"] = *req.SignatureBlobPath
	}
	if req.Status != nil {
		updates["ahr_status"] = *req.Status
	}
	return updates, nil
}
