// file: internals/features/school/academic_health/service/validate.go
package service

import (
	"fmt"
	"strings"

	dto "madrasahku_backend/internals/features/school/academic_health/dto"
	m "madrasahku_backend/internals/features/school/academic_health/model"
	helper "madrasahku_backend/internals/helpers"
)

/* =========================================================
   Validation Gate — fungsi murni atas agregat yang sudah
   di-merge. Semua aturan dievaluasi; hasilnya daftar lengkap
   pelanggaran (bukan cuma yang pertama). Pesan dalam bahasa
   Inggris mengikuti teks di web client.
========================================================= */

// ValidateReport mengembalikan seluruh pelanggaran submit. Kosong = lolos.
func ValidateReport(agg *dto.AcademicHealthReportResponse) []string {
	var violations []string

	// 1. Check-in harus sudah ter-resolve. Id 0 atau timestamp kosong dari
	// payload dihitung BELUM ter-resolve (store menyimpannya sebagai NULL).
	if agg.CheckinID == nil || *agg.CheckinID <= 0 ||
		agg.CheckinTime == nil || strings.TrimSpace(*agg.CheckinTime) == "" {
		violations = append(violations, "Please scan your attendance before submitting the report.")
	}

	// 2. Konfirmasi kehadiran oleh owner.
	if !agg.AttendanceConfirmed {
		violations = append(violations, "Please confirm your attendance.")
	}

	// 3. Imam maghrib wajib dipilih.
	if agg.MaghribSalahLedByID == nil || *agg.MaghribSalahLedByID <= 0 {
		violations = append(violations, "Please select who led the Maghrib Salah.")
	}

	// 4. Kualitas transisi slot 1→2 wajib diisi.
	if strings.TrimSpace(string(agg.Slot12TransitionQuality)) == "" {
		violations = append(violations, "Please select the Slot 1-2 transition quality.")
	}

	// 5. Setiap penyimpangan dari happy path butuh penjelasan tertulis.
	if agg.Slot12TransitionQuality != m.TransitionQualitySmooth || !agg.Slot12NmriModerated {
		if strings.TrimSpace(agg.Slot12Ads) == "" {
			violations = append(violations, "Please describe the Slot 1-2 ADs (required when the transition was not smooth or NMRI was not moderated).")
		}
	}

	// 6. Jumlah hadir MHCP-2 tidak boleh negatif.
	if agg.Mhcp2PresentCount < 0 {
		violations = append(violations, "MHCP-2 present count must be a non-negative number.")
	}

	// 7. Kalau tidak semua pengajar hadir, daftar absen tidak boleh kosong.
	if !agg.Mhcp2AllTeachersPresent {
		if len(DedupIDs(agg.Mhcp2AbsentTeacherIDs)) == 0 {
			violations = append(violations, "Please list the absent MHCP-2 teachers.")
		}
	}

	// 8. Fokus hari ini minimal 3 karakter.
	if len(strings.TrimSpace(agg.Mhcp2FocusToday)) < 3 {
		violations = append(violations, "Please enter today's MHCP-2 focus (at least 3 characters).")
	}

	// 9. Mode pemeriksaan wajib terisi.
	if strings.TrimSpace(string(agg.CheckMode)) == "" {
		violations = append(violations, "Please select a check mode.")
	}

	// 10. Mode MSP: tepat 5 copy check untuk 5 siswa berbeda + 2 class diary check.
	if agg.CheckMode == m.CheckModeMSP {
		distinct := map[int64]struct{}{}
		for _, row := range agg.CopyChecks {
			distinct[row.StudentID] = struct{}{}
		}
		if len(agg.CopyChecks) != 5 || len(distinct) != 5 {
			violations = append(violations, "MSP mode requires exactly 5 copy checks for 5 different students.")
		}
		if len(agg.ClassChecks) != 2 {
			violations = append(violations, "MSP mode requires exactly 2 class diary checks.")
		}
	}

	// 11. Mode morning coaching: catatan minimal 10 karakter.
	if agg.CheckMode == m.CheckModeMorningCoaching {
		if agg.MorningCoaching == nil || len(strings.TrimSpace(agg.MorningCoaching.State)) < 10 {
			violations = append(violations, "Morning coaching notes must be at least 10 characters.")
		}
	}

	// 12. Setiap kategori defaulter harus punya baris aksi — lapor per kategori.
	if len(agg.Defaulters) > 0 {
		covered := map[m.DefaulterType]struct{}{}
		for _, row := range agg.ActionsByCategory {
			covered[row.Category] = struct{}{}
		}
		seen := map[m.DefaulterType]struct{}{}
		for _, row := range agg.Defaulters {
			if _, dup := seen[row.DefaulterType]; dup {
				continue
			}
			seen[row.DefaulterType] = struct{}{}
			if _, ok := covered[row.DefaulterType]; !ok {
				violations = append(violations, fmt.Sprintf(
					"Please record actions for the %s defaulter category.",
					helper.HumanizeToken(string(row.DefaulterType))))
			}
		}
	}

	// 13. Self day close wajib dicentang.
	if !agg.SelfDayClose {
		violations = append(violations, "Please confirm your self day close.")
	}

	// 14. Nama + tanda tangan wajib.
	if strings.TrimSpace(agg.SignatureName) == "" || strings.TrimSpace(agg.SignatureBlobPath) == "" {
		violations = append(violations, "Signature name and signature are both required.")
	}

	// 15. Setiap eskalasi yang ditandai "handled" harus punya baris detail — lapor per id.
	if ids := DedupIDs(agg.EscalationsHandledIDs); len(ids) > 0 {
		detailed := map[int64]struct{}{}
		for _, row := range agg.EscalationDetails {
			detailed[row.EscalationID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := detailed[id]; !ok {
				violations = append(violations, fmt.Sprintf(
					"Please add follow-up details for escalation #%d.", id))
			}
		}
	}

	return violations
}

// DedupIDs membuang duplikat dengan urutan kemunculan pertama dipertahankan.
// Koersi angka + drop nilai non-finite sudah terjadi di decode Int64List,
// jadi di sini tinggal dedup. Dipakai aturan 7 dan 15.
func DedupIDs(ids m.Int64List) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
