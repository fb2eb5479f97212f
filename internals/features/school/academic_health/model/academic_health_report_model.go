// file: internals/features/school/academic_health/model/academic_health_report_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// AcademicHealthReportModel merepresentasikan tabel `academic_health_reports`.
// Satu baris per (tanggal laporan, user penanggung jawab, site) — unik, dijaga
// lewat create-or-fetch + unique index.
type AcademicHealthReportModel struct {
	// =========================
	// Primary Key
	// =========================
	AhrID int64 `json:"ahr_id" gorm:"column:ahr_id;primaryKey;autoIncrement"`

	// =========================
	// Kunci unik laporan
	// =========================
	AhrReportDate       datatypes.Date `json:"ahr_report_date" gorm:"column:ahr_report_date;not null;uniqueIndex:uq_ahr_date_user_site,priority:1"`
	AhrAssignedToUserID int64          `json:"ahr_assigned_to_user_id" gorm:"column:ahr_assigned_to_user_id;not null;uniqueIndex:uq_ahr_date_user_site,priority:2"`
	AhrSiteID           int64          `json:"ahr_site_id" gorm:"column:ahr_site_id;not null;uniqueIndex:uq_ahr_date_user_site,priority:3"`

	AhrStatus ReportStatus `json:"ahr_status" gorm:"column:ahr_status;type:varchar(20);not null;default:'DRAFT'"`

	// =========================
	// Kehadiran (diisi Attendance Bridge, dikonfirmasi owner)
	// =========================
	AhrCheckinID           *int64     `json:"ahr_checkin_id" gorm:"column:ahr_checkin_id"`
	AhrCheckinTime         *time.Time `json:"ahr_checkin_time" gorm:"column:ahr_checkin_time"`
	AhrAttendanceConfirmed bool       `json:"ahr_attendance_confirmed" gorm:"column:ahr_attendance_confirmed;not null;default:false"`

	// =========================
	// Seksi 1 — maghrib & transisi slot 1→2
	// =========================
	AhrMaghribSalahLedByID     *int64            `json:"ahr_maghrib_salah_led_by_id" gorm:"column:ahr_maghrib_salah_led_by_id"`
	AhrSlot12TransitionQuality TransitionQuality `json:"ahr_slot12_transition_quality" gorm:"column:ahr_slot12_transition_quality;type:varchar(20)"`
	AhrSlot12NmriModerated     bool              `json:"ahr_slot12_nmri_moderated" gorm:"column:ahr_slot12_nmri_moderated;not null;default:false"`
	AhrSlot12Ads               string            `json:"ahr_slot12_ads" gorm:"column:ahr_slot12_ads;type:text"`

	// =========================
	// Seksi 2 — kehadiran pengajar MHCP-2
	// =========================
	AhrMhcp2PresentCount       int              `json:"ahr_mhcp2_present_count" gorm:"column:ahr_mhcp2_present_count;not null;default:0"`
	AhrMhcp2AllTeachersPresent bool             `json:"ahr_mhcp2_all_teachers_present" gorm:"column:ahr_mhcp2_all_teachers_present;not null;default:true"`
	AhrMhcp2AbsentTeacherIDs   Int64List        `json:"ahr_mhcp2_absent_teacher_ids" gorm:"column:ahr_mhcp2_absent_teacher_ids"`
	AhrMhcp2Substitutions      SubstitutionList `json:"ahr_mhcp2_substitutions" gorm:"column:ahr_mhcp2_substitutions"`
	AhrMhcp2FocusToday         string           `json:"ahr_mhcp2_focus_today" gorm:"column:ahr_mhcp2_focus_today;type:text"`
	AhrMhcp2Discrepancies      string           `json:"ahr_mhcp2_discrepancies" gorm:"column:ahr_mhcp2_discrepancies;type:text"`
	AhrSection1Comment         string           `json:"ahr_section1_comment" gorm:"column:ahr_section1_comment;type:text"`

	// =========================
	// Mode pemeriksaan & eskalasi
	// =========================
	AhrCheckMode             CheckMode `json:"ahr_check_mode" gorm:"column:ahr_check_mode;type:varchar(20)"`
	AhrEscalationsHandledIDs Int64List `json:"ahr_escalations_handled_ids" gorm:"column:ahr_escalations_handled_ids"`

	// =========================
	// Penutup
	// =========================
	AhrSelfDayClose      bool   `json:"ahr_self_day_close" gorm:"column:ahr_self_day_close;not null;default:false"`
	AhrFinalRemarks      string `json:"ahr_final_remarks" gorm:"column:ahr_final_remarks;type:text"`
	AhrSignatureName     string `json:"ahr_signature_name" gorm:"column:ahr_signature_name;type:varchar(120)"`
	AhrSignatureBlobPath string `json:"ahr_signature_blob_path" gorm:"column:ahr_signature_blob_path;type:text"`

	// =========================
	// Audit
	// =========================
	AhrCreatedByUserID int64     `json:"ahr_created_by_user_id" gorm:"column:ahr_created_by_user_id;not null"`
	AhrCreatedAt       time.Time `json:"ahr_created_at" gorm:"column:ahr_created_at;not null;autoCreateTime"`
	AhrUpdatedAt       time.Time `json:"ahr_updated_at" gorm:"column:ahr_updated_at;not null;autoUpdateTime"`
}

func (AcademicHealthReportModel) TableName() string {
	return "academic_health_reports"
}
