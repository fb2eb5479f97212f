// file: internals/features/school/escalations/model/escalation_matter_model.go
package model

import (
	"time"

	"github.com/lib/pq"
)

type MatterStatus string

const (
	MatterStatusOpen      MatterStatus = "OPEN"
	MatterStatusEscalated MatterStatus = "ESCALATED"
	MatterStatusResolved  MatterStatus = "RESOLVED"
	MatterStatusClosed    MatterStatus = "CLOSED"
)

// Status yang dianggap "masih berjalan" untuk daftar tugas dean.
var OpenMatterStatuses = []MatterStatus{MatterStatusOpen, MatterStatusEscalated}

type EscalationMatterModel struct {
	EscalationMatterID                int64         `json:"escalation_matter_id" gorm:"column:escalation_matter_id;primaryKey;autoIncrement"`
	EscalationMatterTitle             string        `json:"escalation_matter_title" gorm:"column:escalation_matter_title;type:varchar(200);not null"`
	EscalationMatterStatus            MatterStatus  `json:"escalation_matter_status" gorm:"column:escalation_matter_status;type:varchar(20);not null;index"`
	EscalationMatterLevel             int           `json:"escalation_matter_level" gorm:"column:escalation_matter_level;not null;default:1"`
	EscalationMatterCurrentAssigneeID int64         `json:"escalation_matter_current_assignee_id" gorm:"column:escalation_matter_current_assignee_id;index"`
	EscalationMatterCreatedByID       int64         `json:"escalation_matter_created_by_id" gorm:"column:escalation_matter_created_by_id;index"`
	EscalationMatterMemberIDs         pq.Int64Array `json:"escalation_matter_member_ids" gorm:"column:escalation_matter_member_ids;type:bigint[]"`
	EscalationMatterCreatedAt         time.Time     `json:"escalation_matter_created_at" gorm:"column:escalation_matter_created_at;not null;autoCreateTime"`
	EscalationMatterUpdatedAt         time.Time     `json:"escalation_matter_updated_at" gorm:"column:escalation_matter_updated_at;not null;autoUpdateTime"`
}

func (EscalationMatterModel) TableName() string { return "escalation_matters" }
