// file: internals/features/school/escalations/service/escalation_service.go
package service

import (
	"context"

	"gorm.io/gorm"

	m "madrasahku_backend/internals/features/school/escalations/model"
)

type EscalationService struct {
	DB *gorm.DB
}

func NewEscalationService(db *gorm.DB) *EscalationService {
	return &EscalationService{DB: db}
}

// ListOpenMattersFor: perkara yang masih berjalan di mana user adalah
// assignee saat ini, pembuat, atau anggota.
func (s *EscalationService) ListOpenMattersFor(ctx context.Context, userID int64) ([]m.EscalationMatterModel, error) {
	var rows []m.EscalationMatterModel
	err := s.DB.WithContext(ctx).
		Where("escalation_matter_status IN ?", m.OpenMatterStatuses).
		Where(
			"escalation_matter_current_assignee_id = ? OR escalation_matter_created_by_id = ? OR ? = ANY(escalation_matter_member_ids)",
			userID, userID, userID,
		).
		Order("escalation_matter_level DESC, escalation_matter_updated_at DESC").
		Find(&rows).Error
	return rows, err
}
