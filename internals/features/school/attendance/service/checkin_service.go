// file: internals/features/school/attendance/service/checkin_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	m "madrasahku_backend/internals/features/school/attendance/model"
)

// CheckinService mencari scan kehadiran MHCP-2 terbaik untuk satu user/tanggal.
type CheckinService struct {
	DB *gorm.DB
}

func NewCheckinService(db *gorm.DB) *CheckinService {
	return &CheckinService{DB: db}
}

// FindCheckin: match tanggal persis lebih dipilih; kalau tidak ada, fallback
// ke scan terbaru user itu. Pilihan mana yang dipakai selalu di-log untuk
// audit. (nil, nil) berarti tidak ada scan sama sekali.
func (s *CheckinService) FindCheckin(ctx context.Context, userID int64, date time.Time) (*m.Mhcp2CheckinModel, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var row m.Mhcp2CheckinModel
	err := s.DB.WithContext(ctx).
		Where("mhcp2_checkin_user_id = ? AND mhcp2_checkin_program IN ?", userID, m.ProgramAliases).
		Where("mhcp2_checkin_time >= ? AND mhcp2_checkin_time < ?", dayStart, dayEnd).
		Order("mhcp2_checkin_time DESC").
		First(&row).Error
	if err == nil {
		log.Printf("[INFO] check-in user=%d tanggal=%s: match persis id=%d", userID, dayStart.Format("2006-01-02"), row.Mhcp2CheckinID)
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.DB.WithContext(ctx).
		Where("mhcp2_checkin_user_id = ? AND mhcp2_checkin_program IN ?", userID, m.ProgramAliases).
		Order("mhcp2_checkin_time DESC").
		First(&row).Error
	if err == nil {
		log.Printf("[INFO] check-in user=%d tanggal=%s: tidak ada match persis, fallback terbaru id=%d (%s)",
			userID, dayStart.Format("2006-01-02"), row.Mhcp2CheckinID, row.Mhcp2CheckinTime.Format(time.RFC3339))
		return &row, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[INFO] check-in user=%d tanggal=%s: tidak ditemukan sama sekali", userID, dayStart.Format("2006-01-02"))
		return nil, nil
	}
	return nil, err
}
