// file: internals/features/school/academic_health/service/errors.go
package service

import (
	"fmt"
	"strings"
)

// ValidationError membawa SEMUA pelanggaran sekaligus supaya UI bisa
// menampilkan checklist lengkap, bukan error satu-satu.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	return fmt.Sprintf("validasi gagal: %s", strings.Join(e.Messages, "; "))
}
