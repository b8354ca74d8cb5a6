package ocpiformat

import (
	"fmt"
	"regexp"
)

var timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// TimeOfDayRule accepts zero-padded 24-hour HH:MM strings.
type TimeOfDayRule struct{}

func (TimeOfDayRule) Name() string { return NameTimeOfDay }

func (TimeOfDayRule) Check(s string) bool {
	return timeOfDayRegex.MatchString(s)
}

func (TimeOfDayRule) Message(field string) string {
	return fmt.Sprintf("%s must be a valid time in HH:MM format (00:00-23:59)", field)
}

func (r TimeOfDayRule) Validate(field string, value any) Outcome {
	return evaluate(r, field, value)
}

// IsTimeOfDay reports whether s is a valid HH:MM time.
func IsTimeOfDay(s string) bool {
	return TimeOfDayRule{}.Check(s)
}

// ParseTimeOfDay splits a valid HH:MM string into hour and minute.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	if !IsTimeOfDay(s) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')
	return hour, minute, nil
}

// MinutesSinceMidnight converts a valid HH:MM string to minutes, 0 through 1439.
func MinutesSinceMidnight(s string) (int, error) {
	h, m, err := ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}
