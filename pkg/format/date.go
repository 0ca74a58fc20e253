package format

import "time"

const (
	dateLayout    = "02/01/2006"
	timeLayout    = "15:04"
	isoDateLayout = "2006-01-02"
)

// Date форматирует дату как dd/MM/yyyy в указанной локации
func Date(t time.Time, loc *time.Location) string {
	return In(t, loc).Format(dateLayout)
}

// Time форматирует время как HH:mm в указанной локации
func Time(t time.Time, loc *time.Location) string {
	return In(t, loc).Format(timeLayout)
}

// ISODate форматирует дату как yyyy-MM-dd
func ISODate(t time.Time, loc *time.Location) string {
	return In(t, loc).Format(isoDateLayout)
}

// ParseISODate разбирает yyyy-MM-dd как полночь в указанной локации
func ParseISODate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(isoDateLayout, value, loc)
}

// In переводит время в локацию; nil означает time.Local
func In(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.Local()
	}
	return t.In(loc)
}
