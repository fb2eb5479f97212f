// file: internals/features/school/academic_health/controller/attendance_bridge_adapter.go
package controller

import (
	"context"
	"time"

	ahrSvc "madrasahku_backend/internals/features/school/academic_health/service"
	attSvc "madrasahku_backend/internals/features/school/attendance/service"
)

// attendanceBridge mengadaptasi CheckinService ke kontrak AttendanceBridge
// yang dilihat ReportStore.
type attendanceBridge struct {
	svc *attSvc.CheckinService
}

func (b attendanceBridge) FindCheckin(ctx context.Context, userID int64, date time.Time) (*ahrSvc.CheckinRef, error) {
	row, err := b.svc.FindCheckin(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return &ahrSvc.CheckinRef{ID: row.Mhcp2CheckinID, Time: row.Mhcp2CheckinTime}, nil
}
