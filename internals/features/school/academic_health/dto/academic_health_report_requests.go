// file: internals/features/school/academic_health/dto/academic_health_report_requests.go
package dto

import (
	"strings"

	m "madrasahku_backend/internals/features/school/academic_health/model"
)

/* =========================================================
 * REQUESTS
 * Nama field JSON mengikuti kontrak web client lama (camelCase).
 * ========================================================= */

type CreateAcademicHealthReportRequest struct {
	// "YYYY-MM-DD" atau ISO penuh; dinormalisasi ke tanggal saja.
	ReportDate       string      `json:"reportDate" validate:"required"`
	SiteID           int64       `json:"siteId" validate:"required,gt=0"`
	AssignedToUserID int64       `json:"assignedToUserId" validate:"required,gt=0"`
	CheckMode        m.CheckMode `json:"checkMode" validate:"required,oneof=MSP MORNING_COACHING"`
}

func (r *CreateAcademicHealthReportRequest) Normalize() {
	r.ReportDate = strings.TrimSpace(r.ReportDate)
}

/* ======================= Child inputs ======================= */

type CopyCheckInput struct {
	StudentID int64        `json:"studentId"`
	CopyTypes m.StringList `json:"copyTypes"`
	AdFlag    bool         `json:"adFlag"`
	Note      string       `json:"note"`
}

func (in CopyCheckInput) ToModel(reportID int64) m.AhrCopyCheckModel {
	return m.AhrCopyCheckModel{
		AhrCopyCheckReportID:  reportID,
		AhrCopyCheckStudentID: in.StudentID,
		AhrCopyCheckCopyTypes: in.CopyTypes,
		AhrCopyCheckAdFlag:    in.AdFlag,
		AhrCopyCheckNote:      in.Note,
	}
}

type ClassDiaryCheckInput struct {
	ClassID   int64       `json:"classId"`
	DiaryType m.DiaryType `json:"diaryType" validate:"omitempty,oneof=CCD CDD"`
	AdFlag    bool        `json:"adFlag"`
	Note      string      `json:"note"`
}

func (in ClassDiaryCheckInput) ToModel(reportID int64) m.AhrClassDiaryCheckModel {
	return m.AhrClassDiaryCheckModel{
		AhrClassDiaryCheckReportID:  reportID,
		AhrClassDiaryCheckClassID:   in.ClassID,
		AhrClassDiaryCheckDiaryType: in.DiaryType,
		AhrClassDiaryCheckAdFlag:    in.AdFlag,
		AhrClassDiaryCheckNote:      in.Note,
	}
}

type MorningCoachingInput struct {
	Absentees m.Int64List `json:"absentees"`
	State     string      `json:"state"`
}

func (in MorningCoachingInput) ToModel(reportID int64) m.AhrMorningCoachingModel {
	return m.AhrMorningCoachingModel{
		AhrMorningCoachingReportID:  reportID,
		AhrMorningCoachingAbsentees: in.Absentees,
		AhrMorningCoachingState:     in.State,
	}
}

type EscalationDetailInput struct {
	EscalationID int64                    `json:"escalationId"`
	ActionTaken  string                   `json:"actionTaken"`
	Outcome      string                   `json:"outcome"`
	Status       m.EscalationDetailStatus `json:"status" validate:"omitempty,oneof=FOLLOW_UP RESOLVED ESCALATED"`
}

func (in EscalationDetailInput) ToModel(reportID int64) m.AhrEscalationDetailModel {
	return m.AhrEscalationDetailModel{
		AhrEscalationDetailReportID:     reportID,
		AhrEscalationDetailEscalationID: in.EscalationID,
		AhrEscalationDetailActionTaken:  in.ActionTaken,
		AhrEscalationDetailOutcome:      in.Outcome,
		AhrEscalationDetailStatus:       in.Status,
	}
}

type DefaulterInput struct {
	StudentID     int64           `json:"studentId"`
	DefaulterType m.DefaulterType `json:"defaulterType"`
	Reason        string          `json:"reason"`
}

func (in DefaulterInput) ToModel(reportID int64) m.AhrDefaulterModel {
	return m.AhrDefaulterModel{
		AhrDefaulterReportID:  reportID,
		AhrDefaulterStudentID: in.StudentID,
		AhrDefaulterType:      in.DefaulterType,
		AhrDefaulterReason:    in.Reason,
	}
}

type ActionsByCategoryInput struct {
	Category m.DefaulterType `json:"category"`
	Actions  m.StringList    `json:"actions"`
}

func (in ActionsByCategoryInput) ToModel(reportID int64) m.AhrActionsByCategoryModel {
	return m.AhrActionsByCategoryModel{
		AhrActionsByCategoryReportID: reportID,
		AhrActionsByCategoryCategory: in.Category,
		AhrActionsByCategoryActions:  in.Actions,
	}
}

/* ======================= Patch ======================= */

// PatchAcademicHealthReportRequest: semua field opsional; hanya field yang
// hadir (pointer non-nil) yang di-update. Koleksi anak yang hadir diganti
// utuh (replace-set), bukan digabung.
type PatchAcademicHealthReportRequest struct {
	CheckinID               *int64               `json:"checkinId"`
	CheckinTime             *string              `json:"checkinTime"` // dipaksa jadi datetime oleh store
	AttendanceConfirmed     *bool                `json:"attendanceConfirmed"`
	MaghribSalahLedByID     *int64               `json:"maghribSalahLedById"`
	Slot12TransitionQuality *m.TransitionQuality `json:"slot12TransitionQuality" validate:"omitempty,oneof=SMOOTH SLIGHT_DELAY CHAOTIC"`
	Slot12NmriModerated     *bool                `json:"slot12NmriModerated"`
	Slot12Ads               *string              `json:"slot12Ads"`
	Mhcp2PresentCount       *int                 `json:"mhcp2PresentCount"`
	Mhcp2AllTeachersPresent *bool                `json:"mhcp2AllTeachersPresent"`
	Mhcp2AbsentTeacherIDs   *m.Int64List         `json:"mhcp2AbsentTeacherIds"`
	Mhcp2Substitutions      *m.SubstitutionList  `json:"mhcp2Substitutions"`
	Mhcp2FocusToday         *string              `json:"mhcp2FocusToday"`
	Mhcp2Discrepancies      *string              `json:"mhcp2Discrepancies"`
	Section1Comment         *string              `json:"section1Comment"`
	CheckMode               *m.CheckMode         `json:"checkMode" validate:"omitempty,oneof=MSP MORNING_COACHING"`
	EscalationsHandledIDs   *m.Int64List         `json:"escalationsHandledIds"`
	SelfDayClose            *bool                `json:"selfDayClose"`
	FinalRemarks            *string              `json:"finalRemarks"`
	SignatureName           *string              `json:"signatureName"`
	SignatureBlobPath       *string              `json:"signatureBlobPath"`
	Status                  *m.ReportStatus      `json:"status" validate:"omitempty,oneof=DRAFT SUBMITTED APPROVED REOPENED"`

	CopyChecks        *[]CopyCheckInput        `json:"copyChecks" validate:"omitempty,dive"`
	ClassChecks       *[]ClassDiaryCheckInput  `json:"classChecks" validate:"omitempty,dive"`
	MorningCoaching   *MorningCoachingInput    `json:"morningCoaching"`
	EscalationDetails *[]EscalationDetailInput `json:"escalationDetails" validate:"omitempty,dive"`
	Defaulters        *[]DefaulterInput        `json:"defaulters" validate:"omitempty,dive"`
	ActionsByCategory *[]ActionsByCategoryInput `json:"actionsByCategory" validate:"omitempty,dive"`
}

// Apply menimpa agregat yang sudah di-hydrate dengan isi payload (payload
// menang untuk field yang hadir). Dipakai submit untuk membentuk objek yang
// diperiksa Validation Gate sebelum ada tulisan apa pun.
func (r *PatchAcademicHealthReportRequest) Apply(agg *AcademicHealthReportResponse) {
	if r.CheckinID != nil {
		agg.CheckinID = r.CheckinID
	}
	if r.CheckinTime != nil {
		agg.CheckinTime = r.CheckinTime
	}
	if r.AttendanceConfirmed != nil {
		agg.AttendanceConfirmed = *r.AttendanceConfirmed
	}
	if r.MaghribSalahLedByID != nil {
		agg.MaghribSalahLedByID = r.MaghribSalahLedByID
	}
	if r.Slot12TransitionQuality != nil {
		agg.Slot12TransitionQuality = *r.Slot12TransitionQuality
	}
	if r.Slot12NmriModerated != nil {
		agg.Slot12NmriModerated = *r.Slot12NmriModerated
	}
	if r.Slot12Ads != nil {
		agg.Slot12Ads = *r.Slot12Ads
	}
	if r.Mhcp2PresentCount != nil {
		agg.Mhcp2PresentCount = *r.Mhcp2PresentCount
	}
	if r.Mhcp2AllTeachersPresent != nil {
		agg.Mhcp2AllTeachersPresent = *r.Mhcp2AllTeachersPresent
	}
	if r.Mhcp2AbsentTeacherIDs != nil {
		agg.Mhcp2AbsentTeacherIDs = *r.Mhcp2AbsentTeacherIDs
	}
	if r.Mhcp2Substitutions != nil {
		agg.Mhcp2Substitutions = *r.Mhcp2Substitutions
	}
	if r.Mhcp2FocusToday != nil {
		agg.Mhcp2FocusToday = *r.Mhcp2FocusToday
	}
	if r.Mhcp2Discrepancies != nil {
		agg.Mhcp2Discrepancies = *r.Mhcp2Discrepancies
	}
	if r.Section1Comment != nil {
		agg.Section1Comment = *r.Section1Comment
	}
	if r.CheckMode != nil {
		agg.CheckMode = *r.CheckMode
	}
	if r.EscalationsHandledIDs != nil {
		agg.EscalationsHandledIDs = *r.EscalationsHandledIDs
	}
	if r.SelfDayClose != nil {
		agg.SelfDayClose = *r.SelfDayClose
	}
	if r.FinalRemarks != nil {
		agg.FinalRemarks = *r.FinalRemarks
	}
	if r.SignatureName != nil {
		agg.SignatureName = *r.SignatureName
	}
	if r.SignatureBlobPath != nil {
		agg.SignatureBlobPath = *r.SignatureBlobPath
	}
	if r.Status != nil {
		agg.Status = *r.Status
	}

	if r.CopyChecks != nil {
		rows := make([]CopyCheckResponse, 0, len(*r.CopyChecks))
		for _, in := range *r.CopyChecks {
			rows = append(rows, CopyCheckResponse{
				StudentID: in.StudentID,
				CopyTypes: in.CopyTypes,
				AdFlag:    in.AdFlag,
				Note:      in.Note,
			})
		}
		agg.CopyChecks = rows
	}
	if r.ClassChecks != nil {
		rows := make([]ClassDiaryCheckResponse, 0, len(*r.ClassChecks))
		for _, in := range *r.ClassChecks {
			rows = append(rows, ClassDiaryCheckResponse{
				ClassID:   in.ClassID,
				DiaryType: in.DiaryType,
				AdFlag:    in.AdFlag,
				Note:      in.Note,
			})
		}
		agg.ClassChecks = rows
	}
	if r.MorningCoaching != nil {
		agg.MorningCoaching = &MorningCoachingResponse{
			Absentees: r.MorningCoaching.Absentees,
			State:     r.MorningCoaching.State,
		}
	}
	if r.EscalationDetails != nil {
		rows := make([]EscalationDetailResponse, 0, len(*r.EscalationDetails))
		for _, in := range *r.EscalationDetails {
			rows = append(rows, EscalationDetailResponse{
				EscalationID: in.EscalationID,
				ActionTaken:  in.ActionTaken,
				Outcome:      in.Outcome,
				Status:       in.Status,
			})
		}
		agg.EscalationDetails = rows
	}
	if r.Defaulters != nil {
		rows := make([]DefaulterResponse, 0, len(*r.Defaulters))
		for _, in := range *r.Defaulters {
			rows = append(rows, DefaulterResponse{
				StudentID:     in.StudentID,
				DefaulterType: in.DefaulterType,
				Reason:        in.Reason,
			})
		}
		agg.Defaulters = rows
	}
	if r.ActionsByCategory != nil {
		rows := make([]ActionsByCategoryResponse, 0, len(*r.ActionsByCategory))
		for _, in := range *r.ActionsByCategory {
			rows = append(rows, ActionsByCategoryResponse{
				Category: in.Category,
				Actions:  in.Actions,
			})
		}
		agg.ActionsByCategory = rows
	}
}
