// file: internals/features/school/academic_health/model/json_types.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

/* =========================================================
   Kolom list disimpan sebagai JSON text.
   Kontrak decode: null/rusak -> list kosong, TIDAK pernah error.
   Elemen angka boleh datang sebagai string ("9" -> 9).
========================================================= */

type Int64List []int64

func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		l = Int64List{}
	}
	b, err := json.Marshal([]int64(l))
	return string(b), err
}

func (l *Int64List) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*l = decodeInt64List(v)
	case string:
		*l = decodeInt64List([]byte(v))
	default:
		*l = Int64List{}
	}
	return nil
}

func (l *Int64List) UnmarshalJSON(b []byte) error {
	*l = decodeInt64List(b)
	return nil
}

func (Int64List) GormDataType() string { return "text" }

func decodeInt64List(b []byte) Int64List {
	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		return Int64List{}
	}
	out := make(Int64List, 0, len(raw))
	for _, e := range raw {
		switch v := e.(type) {
		case float64:
			out = append(out, int64(v))
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			out = append(out, int64(f))
		}
	}
	return out
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*l = decodeStringList(v)
	case string:
		*l = decodeStringList([]byte(v))
	default:
		*l = StringList{}
	}
	return nil
}

func (l *StringList) UnmarshalJSON(b []byte) error {
	*l = decodeStringList(b)
	return nil
}

func (StringList) GormDataType() string { return "text" }

func decodeStringList(b []byte) StringList {
	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		return StringList{}
	}
	out := make(StringList, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Substitution mencatat pergantian pengajar MHCP-2.
type Substitution struct {
	OriginalTeacherID   int64  `json:"originalTeacherId"`
	SubstituteTeacherID int64  `json:"substituteTeacherId"`
	Reason              string `json:"reason"`
}

type SubstitutionList []Substitution

func (l SubstitutionList) Value() (driver.Value, error) {
	if l == nil {
		l = SubstitutionList{}
	}
	b, err := json.Marshal([]Substitution(l))
	return string(b), err
}

func (l *SubstitutionList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*l = decodeSubstitutionList(v)
	case string:
		*l = decodeSubstitutionList([]byte(v))
	default:
		*l = SubstitutionList{}
	}
	return nil
}

func (SubstitutionList) GormDataType() string { return "text" }

func decodeSubstitutionList(b []byte) SubstitutionList {
	var out []Substitution
	if err := json.Unmarshal(b, &out); err != nil || out == nil {
		return SubstitutionList{}
	}
	return out
}
