// file: internals/features/school/academic_health/dto/academic_health_report_list_dto.go
package dto

import (
	"time"

	m "madrasahku_backend/internals/features/school/academic_health/model"
)

// Item ringkas untuk dashboard — tanpa koleksi anak.
type AcademicHealthReportListItem struct {
	ID               int64          `json:"id"`
	ReportDate       string         `json:"reportDate"`
	SiteID           int64          `json:"siteId"`
	AssignedToUserID int64          `json:"assignedToUserId"`
	Status           m.ReportStatus `json:"status"`
	CheckMode        m.CheckMode    `json:"checkMode"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func NewAcademicHealthReportListItem(row m.AcademicHealthReportModel) AcademicHealthReportListItem {
	return AcademicHealthReportListItem{
		ID:               row.AhrID,
		ReportDate:       FormatReportDate(row.AhrReportDate),
		SiteID:           row.AhrSiteID,
		AssignedToUserID: row.AhrAssignedToUserID,
		Status:           row.AhrStatus,
		CheckMode:        row.AhrCheckMode,
		UpdatedAt:        row.AhrUpdatedAt,
	}
}
