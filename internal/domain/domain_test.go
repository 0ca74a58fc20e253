package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentFilter_Range(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:30 UTC is still the previous day in BRT
	now := time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC)
	midnight := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

	t.Run("today", func(t *testing.T) {
		r := FilterToday.Range(now, loc)
		require.NotNil(t, r.From)
		require.NotNil(t, r.To)
		assert.True(t, midnight.Equal(*r.From))
		assert.True(t, midnight.AddDate(0, 0, 1).Equal(*r.To))
	})

	t.Run("upcoming", func(t *testing.T) {
		r := FilterUpcoming.Range(now, loc)
		require.NotNil(t, r.From)
		assert.True(t, midnight.Equal(*r.From))
		assert.Nil(t, r.To)
	})

	t.Run("all", func(t *testing.T) {
		r := FilterAll.Range(now, loc)
		assert.Nil(t, r.From)
		assert.Nil(t, r.To)
	})
}

func TestParseAppointmentFilter(t *testing.T) {
	f, ok := ParseAppointmentFilter("")
	assert.True(t, ok)
	assert.Equal(t, FilterAll, f)

	f, ok = ParseAppointmentFilter("upcoming")
	assert.True(t, ok)
	assert.Equal(t, FilterUpcoming, f)

	_, ok = ParseAppointmentFilter("yesterday")
	assert.False(t, ok)
}

func TestAppointment_End(t *testing.T) {
	start := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	withService := &Appointment{Date: start, Service: &Service{DurationMinutes: 45}}
	assert.Equal(t, start.Add(45*time.Minute), withService.End(30*time.Minute))

	withoutService := &Appointment{Date: start}
	assert.Equal(t, start.Add(30*time.Minute), withoutService.End(30*time.Minute))
}

func TestPeriodForTime(t *testing.T) {
	assert.Equal(t, PeriodMorning, PeriodForTime(time.Date(2026, 3, 9, 11, 59, 0, 0, time.UTC)))
	assert.Equal(t, PeriodAfternoon, PeriodForTime(time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)))
}

func TestWindow_Contains(t *testing.T) {
	w, ok := PeriodAfternoon.Window()
	require.True(t, ok)

	assert.True(t, w.Contains(time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2026, 3, 9, 13, 59, 0, 0, time.UTC)))

	_, ok = Period("evening").Window()
	assert.False(t, ok)
}
