// file: internals/features/school/directory/model/directory_models.go
package model

// Data referensi read-only. Pengelolaannya (CRUD user/kelas) ada di sistem
// lain; di sini hanya lookup.

type TeacherModel struct {
	TeacherID    int64  `json:"teacher_id" gorm:"column:teacher_id;primaryKey;autoIncrement"`
	TeacherName  string `json:"teacher_name" gorm:"column:teacher_name;type:varchar(120);not null"`
	TeacherEmail string `json:"teacher_email" gorm:"column:teacher_email;type:varchar(160)"`
}

func (TeacherModel) TableName() string { return "teachers" }

type StudentModel struct {
	StudentID      int64  `json:"student_id" gorm:"column:student_id;primaryKey;autoIncrement"`
	StudentName    string `json:"student_name" gorm:"column:student_name;type:varchar(120);not null"`
	StudentClassID int64  `json:"student_class_id" gorm:"column:student_class_id;index"`
}

func (StudentModel) TableName() string { return "students" }

type ClassModel struct {
	ClassID      int64  `json:"class_id" gorm:"column:class_id;primaryKey;autoIncrement"`
	ClassName    string `json:"class_name" gorm:"column:class_name;type:varchar(120);not null"`
	ClassSection string `json:"class_section" gorm:"column:class_section;type:varchar(40)"`
	ClassLabel   string `json:"class_label" gorm:"column:class_label;type:varchar(160)"`
	ClassTrack   string `json:"class_track" gorm:"column:class_track;type:varchar(40);index"`
}

func (ClassModel) TableName() string { return "classes" }
