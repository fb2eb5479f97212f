// file: internals/features/school/academic_health/model/ahr_children_model.go
package model

/* =========================================================
   Enam koleksi anak AHR. Semuanya replace-set: setiap patch
   yang menyertakan koleksinya menghapus seluruh baris lama
   lalu insert set baru (lihat service.ReportStore.Patch).
   Tidak ada soft delete di sini.
========================================================= */

type AhrCopyCheckModel struct {
	AhrCopyCheckID        int64      `json:"ahr_copy_check_id" gorm:"column:ahr_copy_check_id;primaryKey;autoIncrement"`
	AhrCopyCheckReportID  int64      `json:"ahr_copy_check_report_id" gorm:"column:ahr_copy_check_report_id;not null;index:idx_ahr_copy_checks_report"`
	AhrCopyCheckStudentID int64      `json:"ahr_copy_check_student_id" gorm:"column:ahr_copy_check_student_id;not null"`
	AhrCopyCheckCopyTypes StringList `json:"ahr_copy_check_copy_types" gorm:"column:ahr_copy_check_copy_types"`
	AhrCopyCheckAdFlag    bool       `json:"ahr_copy_check_ad_flag" gorm:"column:ahr_copy_check_ad_flag;not null;default:false"`
	AhrCopyCheckNote      string     `json:"ahr_copy_check_note" gorm:"column:ahr_copy_check_note;type:text"`
}

func (AhrCopyCheckModel) TableName() string { return "ahr_copy_checks" }

type AhrClassDiaryCheckModel struct {
	AhrClassDiaryCheckID        int64     `json:"ahr_class_diary_check_id" gorm:"column:ahr_class_diary_check_id;primaryKey;autoIncrement"`
	AhrClassDiaryCheckReportID  int64     `json:"ahr_class_diary_check_report_id" gorm:"column:ahr_class_diary_check_report_id;not null;index:idx_ahr_class_diary_checks_report"`
	AhrClassDiaryCheckClassID   int64     `json:"ahr_class_diary_check_class_id" gorm:"column:ahr_class_diary_check_class_id;not null"`
	AhrClassDiaryCheckDiaryType DiaryType `json:"ahr_class_diary_check_diary_type" gorm:"column:ahr_class_diary_check_diary_type;type:varchar(10)"`
	AhrClassDiaryCheckAdFlag    bool      `json:"ahr_class_diary_check_ad_flag" gorm:"column:ahr_class_diary_check_ad_flag;not null;default:false"`
	AhrClassDiaryCheckNote      string    `json:"ahr_class_diary_check_note" gorm:"column:ahr_class_diary_check_note;type:text"`
}

func (AhrClassDiaryCheckModel) TableName() string { return "ahr_class_diary_checks" }

// Maksimal satu baris per laporan.
type AhrMorningCoachingModel struct {
	AhrMorningCoachingID        int64     `json:"ahr_morning_coaching_id" gorm:"column:ahr_morning_coaching_id;primaryKey;autoIncrement"`
	AhrMorningCoachingReportID  int64     `json:"ahr_morning_coaching_report_id" gorm:"column:ahr_morning_coaching_report_id;not null;index:idx_ahr_morning_coachings_report"`
	AhrMorningCoachingAbsentees Int64List `json:"ahr_morning_coaching_absentees" gorm:"column:ahr_morning_coaching_absentees"`
	AhrMorningCoachingState     string    `json:"ahr_morning_coaching_state" gorm:"column:ahr_morning_coaching_state;type:text"`
}

func (AhrMorningCoachingModel) TableName() string { return "ahr_morning_coachings" }

type AhrEscalationDetailModel struct {
	AhrEscalationDetailID           int64                  `json:"ahr_escalation_detail_id" gorm:"column:ahr_escalation_detail_id;primaryKey;autoIncrement"`
	AhrEscalationDetailReportID     int64                  `json:"ahr_escalation_detail_report_id" gorm:"column:ahr_escalation_detail_report_id;not null;index:idx_ahr_escalation_details_report"`
	AhrEscalationDetailEscalationID int64                  `json:"ahr_escalation_detail_escalation_id" gorm:"column:ahr_escalation_detail_escalation_id;not null"`
	AhrEscalationDetailActionTaken  string                 `json:"ahr_escalation_detail_action_taken" gorm:"column:ahr_escalation_detail_action_taken;type:text"`
	AhrEscalationDetailOutcome      string                 `json:"ahr_escalation_detail_outcome" gorm:"column:ahr_escalation_detail_outcome;type:text"`
	AhrEscalationDetailStatus       EscalationDetailStatus `json:"ahr_escalation_detail_status" gorm:"column:ahr_escalation_detail_status;type:varchar(20)"`
}

func (AhrEscalationDetailModel) TableName() string { return "ahr_escalation_details" }

type AhrDefaulterModel struct {
	AhrDefaulterID        int64         `json:"ahr_defaulter_id" gorm:"column:ahr_defaulter_id;primaryKey;autoIncrement"`
	AhrDefaulterReportID  int64         `json:"ahr_defaulter_report_id" gorm:"column:ahr_defaulter_report_id;not null;index:idx_ahr_defaulters_report"`
	AhrDefaulterStudentID int64         `json:"ahr_defaulter_student_id" gorm:"column:ahr_defaulter_student_id;not null"`
	AhrDefaulterType      DefaulterType `json:"ahr_defaulter_type" gorm:"column:ahr_defaulter_type;type:varchar(30)"`
	AhrDefaulterReason    string        `json:"ahr_defaulter_reason" gorm:"column:ahr_defaulter_reason;type:text"`
}

func (AhrDefaulterModel) TableName() string { return "ahr_defaulters" }

type AhrActionsByCategoryModel struct {
	AhrActionsByCategoryID       int64         `json:"ahr_actions_by_category_id" gorm:"column:ahr_actions_by_category_id;primaryKey;autoIncrement"`
	AhrActionsByCategoryReportID int64         `json:"ahr_actions_by_category_report_id" gorm:"column:ahr_actions_by_category_report_id;not null;index:idx_ahr_actions_by_categories_report"`
	AhrActionsByCategoryCategory DefaulterType `json:"ahr_actions_by_category_category" gorm:"column:ahr_actions_by_category_category;type:varchar(30)"`
	AhrActionsByCategoryActions  StringList    `json:"ahr_actions_by_category_actions" gorm:"column:ahr_actions_by_category_actions"`
}

func (AhrActionsByCategoryModel) TableName() string { return "ahr_actions_by_categories" }
