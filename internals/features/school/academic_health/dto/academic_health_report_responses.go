// file: internals/features/school/academic_health/dto/academic_health_report_responses.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	m "madrasahku_backend/internals/features/school/academic_health/model"
)

/* =========================================================
 * RESPONSE — agregat penuh laporan + enam koleksi anak.
 * Tanggal laporan diserialisasi "YYYY-MM-DD"; timestamp ISO-8601 atau null.
 * ========================================================= */

type CopyCheckResponse struct {
	ID        int64        `json:"id,omitempty"`
	StudentID int64        `json:"studentId"`
	CopyTypes m.StringList `json:"copyTypes"`
	AdFlag    bool         `json:"adFlag"`
	Note      string       `json:"note"`
}

type ClassDiaryCheckResponse struct {
	ID        int64       `json:"id,omitempty"`
	ClassID   int64       `json:"classId"`
	DiaryType m.DiaryType `json:"diaryType"`
	AdFlag    bool        `json:"adFlag"`
	Note      string      `json:"note"`
}

type MorningCoachingResponse struct {
	ID        int64       `json:"id,omitempty"`
	Absentees m.Int64List `json:"absentees"`
	State     string      `json:"state"`
}

type EscalationDetailResponse struct {
	ID           int64                    `json:"id,omitempty"`
	EscalationID int64                    `json:"escalationId"`
	ActionTaken  string                   `json:"actionTaken"`
	Outcome      string                   `json:"outcome"`
	Status       m.EscalationDetailStatus `json:"status"`
}

type DefaulterResponse struct {
	ID            int64           `json:"id,omitempty"`
	StudentID     int64           `json:"studentId"`
	DefaulterType m.DefaulterType `json:"defaulterType"`
	Reason        string          `json:"reason"`
}

type ActionsByCategoryResponse struct {
	ID       int64           `json:"id,omitempty"`
	Category m.DefaulterType `json:"category"`
	Actions  m.StringList    `json:"actions"`
}

type AcademicHealthReportResponse struct {
	ID               int64          `json:"id"`
	ReportDate       string         `json:"reportDate"`
	SiteID           int64          `json:"siteId"`
	AssignedToUserID int64          `json:"assignedToUserId"`
	Status           m.ReportStatus `json:"status"`

	CheckinID           *int64  `json:"checkinId"`
	CheckinTime         *string `json:"checkinTime"`
	AttendanceConfirmed bool    `json:"attendanceConfirmed"`

	MaghribSalahLedByID     *int64              `json:"maghribSalahLedById"`
	Slot12TransitionQuality m.TransitionQuality `json:"slot12TransitionQuality"`
	Slot12NmriModerated     bool                `json:"slot12NmriModerated"`
	Slot12Ads               string              `json:"slot12Ads"`

	Mhcp2PresentCount       int                `json:"mhcp2PresentCount"`
	Mhcp2AllTeachersPresent bool               `json:"mhcp2AllTeachersPresent"`
	Mhcp2AbsentTeacherIDs   m.Int64List        `json:"mhcp2AbsentTeacherIds"`
	Mhcp2Substitutions      m.SubstitutionList `json:"mhcp2Substitutions"`
	Mhcp2FocusToday         string             `json:"mhcp2FocusToday"`
	Mhcp2Discrepancies      string             `json:"mhcp2Discrepancies"`
	Section1Comment         string             `json:"section1Comment"`

	CheckMode             m.CheckMode `json:"checkMode"`
	EscalationsHandledIDs m.Int64List `json:"escalationsHandledIds"`

	SelfDayClose      bool   `json:"selfDayClose"`
	FinalRemarks      string `json:"finalRemarks"`
	SignatureName     string `json:"signatureName"`
	SignatureBlobPath string `json:"signatureBlobPath"`

	CreatedByUserID int64     `json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	CopyChecks        []CopyCheckResponse         `json:"copyChecks"`
	ClassChecks       []ClassDiaryCheckResponse   `json:"classChecks"`
	MorningCoaching   *MorningCoachingResponse    `json:"morningCoaching"`
	EscalationDetails []EscalationDetailResponse  `json:"escalationDetails"`
	Defaulters        []DefaulterResponse         `json:"defaulters"`
	ActionsByCategory []ActionsByCategoryResponse `json:"actionsByCategory"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FormatReportDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func NewAcademicHealthReportResponse(
	parent m.AcademicHealthReportModel,
	copies []m.AhrCopyCheckModel,
	classChecks []m.AhrClassDiaryCheckModel,
	coaching *m.AhrMorningCoachingModel,
	escalations []m.AhrEscalationDetailModel,
	defaulters []m.AhrDefaulterModel,
	actions []m.AhrActionsByCategoryModel,
) AcademicHealthReportResponse {
	resp := AcademicHealthReportResponse{
		ID:               parent.AhrID,
		ReportDate:       FormatReportDate(parent.AhrReportDate),
		SiteID:           parent.AhrSiteID,
		AssignedToUserID: parent.AhrAssignedToUserID,
		Status:           parent.AhrStatus,

		CheckinID:           parent.AhrCheckinID,
		CheckinTime:         formatTimestamp(parent.AhrCheckinTime),
		AttendanceConfirmed: parent.AhrAttendanceConfirmed,

		MaghribSalahLedByID:     parent.AhrMaghribSalahLedByID,
		Slot12TransitionQuality: parent.AhrSlot12TransitionQuality,
		Slot12NmriModerated:     parent.AhrSlot12NmriModerated,
		Slot12Ads:               parent.AhrSlot12Ads,

		Mhcp2PresentCount:       parent.AhrMhcp2PresentCount,
		Mhcp2AllTeachersPresent: parent.AhrMhcp2AllTeachersPresent,
		Mhcp2AbsentTeacherIDs:   emptyIfNilInt64(parent.AhrMhcp2AbsentTeacherIDs),
		Mhcp2Substitutions:      emptyIfNilSubs(parent.AhrMhcp2Substitutions),
		Mhcp2FocusToday:         parent.AhrMhcp2FocusToday,
		Mhcp2Discrepancies:      parent.AhrMhcp2Discrepancies,
		Section1Comment:         parent.AhrSection1Comment,

		CheckMode:             parent.AhrCheckMode,
		EscalationsHandledIDs: emptyIfNilInt64(parent.AhrEscalationsHandledIDs),

		SelfDayClose:      parent.AhrSelfDayClose,
		FinalRemarks:      parent.AhrFinalRemarks,
		SignatureName:     parent.AhrSignatureName,
		SignatureBlobPath: parent.AhrSignatureBlobPath,

		CreatedByUserID: parent.AhrCreatedByUserID,
		CreatedAt:       parent.AhrCreatedAt,
		UpdatedAt:       parent.AhrUpdatedAt,

		CopyChecks:        make([]CopyCheckResponse, 0, len(copies)),
		ClassChecks:       make([]ClassDiaryCheckResponse, 0, len(classChecks)),
		EscalationDetails: make([]EscalationDetailResponse, 0, len(escalations)),
		Defaulters:        make([]DefaulterResponse, 0, len(defaulters)),
		ActionsByCategory: make([]ActionsByCategoryResponse, 0, len(actions)),
	}

	for _, row := range copies {
		resp.CopyChecks = append(resp.CopyChecks, CopyCheckResponse{
			ID:        row.AhrCopyCheckID,
			StudentID: row.AhrCopyCheckStudentID,
			CopyTypes: emptyIfNilStrings(row.AhrCopyCheckCopyTypes),
			AdFlag:    row.AhrCopyCheckAdFlag,
			Note:      row.AhrCopyCheckNote,
		})
	}
	for _, row := range classChecks {
		resp.ClassChecks = append(resp.ClassChecks, ClassDiaryCheckResponse{
			ID:        row.AhrClassDiaryCheckID,
			ClassID:   row.AhrClassDiaryCheckClassID,
			DiaryType: row.AhrClassDiaryCheckDiaryType,
			AdFlag:    row.AhrClassDiaryCheckAdFlag,
			Note:      row.AhrClassDiaryCheckNote,
		})
	}
	if coaching != nil {
		resp.MorningCoaching = &MorningCoachingResponse{
			ID:        coaching.AhrMorningCoachingID,
			Absentees: emptyIfNilInt64(coaching.AhrMorningCoachingAbsentees),
			State:     coaching.AhrMorningCoachingState,
		}
	}
	for _, row := range escalations {
		resp.EscalationDetails = append(resp.EscalationDetails, EscalationDetailResponse{
			ID:           row.AhrEscalationDetailID,
			EscalationID: row.AhrEscalationDetailEscalationID,
			ActionTaken:  row.AhrEscalationDetailActionTaken,
			Outcome:      row.AhrEscalationDetailOutcome,
			Status:       row.AhrEscalationDetailStatus,
		})
	}
	for _, row := range defaulters {
		resp.Defaulters = append(resp.Defaulters, DefaulterResponse{
			ID:            row.AhrDefaulterID,
			StudentID:     row.AhrDefaulterStudentID,
			DefaulterType: row.AhrDefaulterType,
			Reason:        row.AhrDefaulterReason,
		})
	}
	for _, row := range actions {
		resp.ActionsByCategory = append(resp.ActionsByCategory, ActionsByCategoryResponse{
			ID:       row.AhrActionsByCategoryID,
			Category: row.AhrActionsByCategoryCategory,
			Actions:  emptyIfNilStrings(row.AhrActionsByCategoryActions),
		})
	}

	return resp
}

func emptyIfNilInt64(l m.Int64List) m.Int64List {
	if l == nil {
		return m.Int64List{}
	}
	return l
}

func emptyIfNilStrings(l m.StringList) m.StringList {
	if l == nil {
		return m.StringList{}
	}
	return l
}

func emptyIfNilSubs(l m.SubstitutionList) m.SubstitutionList {
	if l == nil {
		return m.SubstitutionList{}
	}
	return l
}
