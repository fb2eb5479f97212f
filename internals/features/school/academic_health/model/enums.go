// file: internals/features/school/academic_health/model/enums.go
package model

/* =========================================================
   Enum tokens laporan AHR.
   Label manusiawi TIDAK dipelihara di sini — dibangun generik
   lewat helper.HumanizeToken (lihat directory/service).
========================================================= */

type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "DRAFT"
	ReportStatusSubmitted ReportStatus = "SUBMITTED"
	ReportStatusApproved  ReportStatus = "APPROVED"
	ReportStatusReopened  ReportStatus = "REOPENED"
)

type CheckMode string

const (
	CheckModeMSP             CheckMode = "MSP"
	CheckModeMorningCoaching CheckMode = "MORNING_COACHING"
)

type TransitionQuality string

const (
	TransitionQualitySmooth      TransitionQuality = "SMOOTH"
	TransitionQualitySlightDelay TransitionQuality = "SLIGHT_DELAY"
	TransitionQualityChaotic     TransitionQuality = "CHAOTIC"
)

type DiaryType string

const (
	DiaryTypeCCD DiaryType = "CCD"
	DiaryTypeCDD DiaryType = "CDD"
)

type EscalationDetailStatus string

const (
	EscalationDetailFollowUp  EscalationDetailStatus = "FOLLOW_UP"
	EscalationDetailResolved  EscalationDetailStatus = "RESOLVED"
	EscalationDetailEscalated EscalationDetailStatus = "ESCALATED"
)

type DefaulterType string

const (
	DefaulterTypeLateSubmission  DefaulterType = "LATE_SUBMISSION"
	DefaulterTypeHomeworkNotDone DefaulterType = "HOMEWORK_NOT_DONE"
	DefaulterTypeCopyNotBrought  DefaulterType = "COPY_NOT_BROUGHT"
	DefaulterTypeDiscipline      DefaulterType = "DISCIPLINE"
	DefaulterTypeUniform         DefaulterType = "UNIFORM_VIOLATION"
)

var (
	AllTransitionQualities = []TransitionQuality{
		TransitionQualitySmooth,
		TransitionQualitySlightDelay,
		TransitionQualityChaotic,
	}

	AllCheckModes = []CheckMode{
		CheckModeMSP,
		CheckModeMorningCoaching,
	}

	AllDiaryTypes = []DiaryType{
		DiaryTypeCCD,
		DiaryTypeCDD,
	}

	AllEscalationDetailStatuses = []EscalationDetailStatus{
		EscalationDetailFollowUp,
		EscalationDetailResolved,
		EscalationDetailEscalated,
	}

	AllDefaulterTypes = []DefaulterType{
		DefaulterTypeLateSubmission,
		DefaulterTypeHomeworkNotDone,
		DefaulterTypeCopyNotBrought,
		DefaulterTypeDiscipline,
		DefaulterTypeUniform,
	}
)
