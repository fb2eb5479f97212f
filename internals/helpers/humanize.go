// file: internals/helpers/humanize.go
package helper

import "strings"

// HumanizeToken mengubah token enum (snake/kebab case) menjadi label Title Case.
// Contoh: "LATE_SUBMISSION" -> "Late Submission", "morning-coaching" -> "Morning Coaching".
// Dipakai untuk semua enum; jangan bikin map label per enum.
func HumanizeToken(token string) string {
	t := strings.TrimSpace(token)
	if t == "" {
		return ""
	}
	t = strings.NewReplacer("_", " ", "-", " ").Replace(t)
	words := strings.Fields(strings.ToLower(t))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
