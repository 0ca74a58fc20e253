package domain

// Slot generation
const (
	SlotStepMinutes = 30
)

// Validation limits
const (
	MaxClientNameLength = 120
	MinPasswordLength   = 8
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
