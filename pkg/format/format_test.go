package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "area code only", input: "85", want: "85"},
		{name: "partial number", input: "85994", want: "(85) 994"},
		{name: "landline", input: "8532345678", want: "(85) 3234-5678"},
		{name: "mobile", input: "85994015283", want: "(85) 99401-5283"},
		{name: "strips non digits", input: "(85) 9 9401-5283", want: "(85) 99401-5283"},
		{name: "drops extra digits", input: "8599401528399", want: "(85) 99401-5283"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.input))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("(85) 99401-5283"))
	assert.True(t, IsValidPhone("(85) 3234-5678"))
	assert.False(t, IsValidPhone("(85) 994"))
	assert.False(t, IsValidPhone("85994015283"))
	assert.False(t, IsValidPhone(""))
}

func TestDateAndTime(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	instant := time.Date(2026, 3, 9, 12, 30, 0, 0, time.UTC)

	assert.Equal(t, "09/03/2026", Date(instant, loc))
	assert.Equal(t, "09:30", Time(instant, loc))
	assert.Equal(t, "2026-03-09", ISODate(instant, loc))
}

func TestParseISODate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	got, err := ParseISODate("2026-03-09", loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc).Equal(got))
	assert.Equal(t, loc, got.Location())

	_, err = ParseISODate("09/03/2026", loc)
	assert.Error(t, err)
}
