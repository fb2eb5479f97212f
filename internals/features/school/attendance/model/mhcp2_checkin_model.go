// file: internals/features/school/attendance/model/mhcp2_checkin_model.go
package model

import "time"

// Mhcp2CheckinModel adalah hasil scan kehadiran yang DIBACA saja oleh AHR.
// Penulisnya adalah subsistem scanning terpisah.
type Mhcp2CheckinModel struct {
	Mhcp2CheckinID      int64     `json:"mhcp2_checkin_id" gorm:"column:mhcp2_checkin_id;primaryKey;autoIncrement"`
	Mhcp2CheckinUserID  int64     `json:"mhcp2_checkin_user_id" gorm:"column:mhcp2_checkin_user_id;not null;index:idx_mhcp2_checkins_user_time,priority:1"`
	Mhcp2CheckinProgram string    `json:"mhcp2_checkin_program" gorm:"column:mhcp2_checkin_program;type:varchar(20);not null"`
	Mhcp2CheckinTime    time.Time `json:"mhcp2_checkin_time" gorm:"column:mhcp2_checkin_time;not null;index:idx_mhcp2_checkins_user_time,priority:2,sort:desc"`
}

func (Mhcp2CheckinModel) TableName() string { return "mhcp2_checkins" }

// Alias nama program yang diterima (penamaan lama masih beredar di data scan).
var ProgramAliases = []string{"MHCP-2", "MHCP2", "MOP2", "mop2"}
