package ocpiformat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	maxDateTimeLength = 25

	// layoutLocal is an OCPI DateTime without zone designator, read as UTC.
	layoutLocal = "2006-01-02T15:04:05"

	// layoutOutput is what FormatDateTime emits: 24 characters, always valid.
	layoutOutput = "2006-01-02T15:04:05.000Z"
)

var (
	// Fractional seconds may only be followed by Z, never by an offset.
	dateTimeWithFractions = regexp.MustCompile(
		`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:[0-5]\d\.\d{1,3}Z?$`)

	dateTimeWithoutFractions = regexp.MustCompile(
		`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:[0-5]\d(Z|[+-]([01]\d|2[0-3]):[0-5]\d)?$`)
)

// DateTimeRule accepts OCPI DateTime strings that denote a real calendar instant.
type DateTimeRule struct{}

func (DateTimeRule) Name() string { return NameDateTime }

// Check applies the length limit, the grammar and the calendar test in that order.
func (DateTimeRule) Check(s string) bool {
	if len(s) > maxDateTimeLength {
		return false
	}
	if !dateTimeWithFractions.MatchString(s) && !dateTimeWithoutFractions.MatchString(s) {
		return false
	}
	return calendarValid(s)
}

func (DateTimeRule) Message(field string) string {
	return fmt.Sprintf("%s must be a valid OCPI DateTime (max 25 chars: YYYY-MM-DDTHH:mm:ss[.fff][Z] or YYYY-MM-DDTHH:mm:ss[Z|±HH:mm])", field)
}

func (r DateTimeRule) Validate(field string, value any) Outcome {
	return evaluate(r, field, value)
}

// IsDateTime reports whether s is a valid OCPI DateTime.
func IsDateTime(s string) bool {
	return DateTimeRule{}.Check(s)
}

// calendarValid rebuilds the instant from its components and requires an exact
// round trip. time.Date normalizes overflow (February 30 becomes March 2), so
// any impossible date shows up as a mismatch. UTC keeps DST gaps out of the way.
// The caller guarantees s matched one of the grammars.
func calendarValid(s string) bool {
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return false
	}
	month, _ := strconv.Atoi(s[5:7])
	day, _ := strconv.Atoi(s[8:10])
	hour, _ := strconv.Atoi(s[11:13])
	minute, _ := strconv.Atoi(s[14:16])
	second, _ := strconv.Atoi(s[17:19])

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return t.Year() == year &&
		int(t.Month()) == month &&
		t.Day() == day &&
		t.Hour() == hour &&
		t.Minute() == minute &&
		t.Second() == second
}

// ParseDateTime validates s and converts it to a time.Time.
// Values without a zone designator are interpreted as UTC.
func ParseDateTime(s string) (time.Time, error) {
	if !IsDateTime(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}

	var (
		t   time.Time
		err error
	)
	if hasZone(s) {
		t, err = time.Parse(time.RFC3339, s)
	} else {
		t, err = time.ParseInLocation(layoutLocal, s, time.UTC)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}
	return t, nil
}

// FormatDateTime renders t in UTC with millisecond precision and a Z suffix.
// The result passes DateTimeRule for years 0000 through 9999.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(layoutOutput)
}

// hasZone expects a string that already passed Check. Offsets never combine
// with fractions, so an offset form is always exactly 25 characters long.
func hasZone(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	return len(s) == maxDateTimeLength && (s[19] == '+' || s[19] == '-')
}
