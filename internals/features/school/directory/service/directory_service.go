// file: internals/features/school/directory/service/directory_service.go
package service

import (
	"context"

	"gorm.io/gorm"

	ahrModel "madrasahku_backend/internals/features/school/academic_health/model"
	m "madrasahku_backend/internals/features/school/directory/model"
	helper "madrasahku_backend/internals/helpers"
)

type DirectoryService struct {
	DB *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{DB: db}
}

func (s *DirectoryService) ListTeachers(ctx context.Context) ([]m.TeacherModel, error) {
	var rows []m.TeacherModel
	err := s.DB.WithContext(ctx).Order("teacher_name").Find(&rows).Error
	return rows, err
}

func (s *DirectoryService) ListStudents(ctx context.Context) ([]m.StudentModel, error) {
	var rows []m.StudentModel
	err := s.DB.WithContext(ctx).Order("student_name").Find(&rows).Error
	return rows, err
}

func (s *DirectoryService) ListClasses(ctx context.Context) ([]m.ClassModel, error) {
	var rows []m.ClassModel
	err := s.DB.WithContext(ctx).Order("class_name").Find(&rows).Error
	return rows, err
}

/* =========================================================
   Opsi enum. Label dibangun generik dari token lewat
   helper.HumanizeToken — tidak ada map label per enum.
========================================================= */

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func option(token string) Option {
	return Option{Value: token, Label: helper.HumanizeToken(token)}
}

func TransitionQualityOptions() []Option {
	out := make([]Option, 0, len(ahrModel.AllTransitionQualities))
	for _, v := range ahrModel.AllTransitionQualities {
		out = append(out, option(string(v)))
	}
	return out
}

func CheckModeOptions() []Option {
	out := make([]Option, 0, len(ahrModel.AllCheckModes))
	for _, v := range ahrModel.AllCheckModes {
		out = append(out, option(string(v)))
	}
	return out
}

func DiaryTypeOptions() []Option {
	out := make([]Option, 0, len(ahrModel.AllDiaryTypes))
	for _, v := range ahrModel.AllDiaryTypes {
		out = append(out, option(string(v)))
	}
	return out
}

func EscalationStatusOptions() []Option {
	out := make([]Option, 0, len(ahrModel.AllEscalationDetailStatuses))
	for _, v := range ahrModel.AllEscalationDetailStatuses {
		out = append(out, option(string(v)))
	}
	return out
}

func DefaulterTypeOptions() []Option {
	out := make([]Option, 0, len(ahrModel.AllDefaulterTypes))
	for _, v := range ahrModel.AllDefaulterTypes {
		out = append(out, option(string(v)))
	}
	return out
}

// ActionsCatalog: katalog aksi remediasi yang fix (bukan dari DB).
func ActionsCatalog() []string {
	return []string{
		"VERBAL_WARNING",
		"REFLECTION_SHEET",
		"PARENT_CALL",
		"DUTY",
		"NOTICE",
		"OTHER",
	}
}
