package domain

import "time"

// Period is one of the daily operating windows
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// Window is a half-open [StartHour:00, EndHour:00) interval of a day
type Window struct {
	StartHour int
	EndHour   int
}

var periodWindows = map[Period]Window{
	PeriodMorning:   {StartHour: 8, EndHour: 12},
	PeriodAfternoon: {StartHour: 14, EndHour: 18},
}

// Window returns the operating window of the period
func (p Period) Window() (Window, bool) {
	w, ok := periodWindows[p]
	return w, ok
}

// IsValid returns true for known periods
func (p Period) IsValid() bool {
	_, ok := periodWindows[p]
	return ok
}

// Contains reports whether the wall-clock hour of t lies in the window
func (w Window) Contains(t time.Time) bool {
	return t.Hour() >= w.StartHour && t.Hour() < w.EndHour
}

// PeriodForTime picks the period by the wall-clock hour: before noon is morning
func PeriodForTime(t time.Time) Period {
	if t.Hour() < 12 {
		return PeriodMorning
	}
	return PeriodAfternoon
}
