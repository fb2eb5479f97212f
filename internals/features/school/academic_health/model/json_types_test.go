// file: internals/features/school/academic_health/model/json_types_test.go
package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64ListUnmarshalCoercion(t *testing.T) {
	var l Int64List
	require.NoError(t, json.Unmarshal([]byte(`[3, 7, 3, "9"]`), &l))
	assert.Equal(t, Int64List{3, 7, 3, 9}, l, "duplikat dipertahankan, string angka dikoersi")
}

func TestInt64ListUnmarshalDropsGarbage(t *testing.T) {
	var l Int64List
	require.NoError(t, json.Unmarshal([]byte(`[1, "abc", null, true, "2"]`), &l))
	assert.Equal(t, Int64List{1, 2}, l)
}

func TestInt64ListUnmarshalWrongShape(t *testing.T) {
	// JSON valid tapi bukan array — decode TIDAK error, hasilnya list kosong.
	cases := []string{`null`, `"bukan array"`, `{"a":1}`, `42`}
	for _, raw := range cases {
		var l Int64List
		require.NoError(t, json.Unmarshal([]byte(raw), &l), raw)
		assert.Equal(t, Int64List{}, l, raw)
	}
}

func TestInt64ListScanBrokenPayload(t *testing.T) {
	// Jalur baca dari storage: teks rusak apa pun -> list kosong, tanpa error.
	cases := []string{`{#broken`, `[1,2`, `bukan json`, ``}
	for _, raw := range cases {
		var l Int64List
		require.NoError(t, l.Scan([]byte(raw)), raw)
		assert.Equal(t, Int64List{}, l, raw)
	}
}

func TestInt64ListScanRoundTrip(t *testing.T) {
	v, err := Int64List{5, 6}.Value()
	require.NoError(t, err)

	var back Int64List
	require.NoError(t, back.Scan(v))
	assert.Equal(t, Int64List{5, 6}, back)

	var fromBytes Int64List
	require.NoError(t, fromBytes.Scan([]byte(`[1,"2"]`)))
	assert.Equal(t, Int64List{1, 2}, fromBytes)

	var fromNil Int64List
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, Int64List{}, fromNil)
}

func TestInt64ListValueOfNil(t *testing.T) {
	var l Int64List
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v, "nil diserialisasi sebagai array kosong, bukan null")
}

func TestStringListDecode(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`["NOTES", 3, "HOMEWORK"]`), &l))
	assert.Equal(t, StringList{"NOTES", "HOMEWORK"}, l, "elemen non-string di-drop")

	var broken StringList
	require.NoError(t, broken.Scan("tidak valid"))
	assert.Equal(t, StringList{}, broken)
}

func TestSubstitutionListRoundTrip(t *testing.T) {
	l := SubstitutionList{
		{OriginalTeacherID: 11, SubstituteTeacherID: 12, Reason: "sakit"},
	}
	v, err := l.Value()
	require.NoError(t, err)

	var back SubstitutionList
	require.NoError(t, back.Scan(v))
	assert.Equal(t, l, back)

	var broken SubstitutionList
	require.NoError(t, broken.Scan([]byte(`{"x"`)))
	assert.Equal(t, SubstitutionList{}, broken)
}
