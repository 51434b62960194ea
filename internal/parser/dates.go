package parser

import (
	"regexp"
	"strconv"
	"time"
)

// partialDatePattern matches the bank's partial dates: MM/DD or MM-DD.
var partialDatePattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`)

// dateLinePrefix matches a line that begins a new dated record.
var dateLinePrefix = regexp.MustCompile(`^\d{2}/\d{2}\s`)

// ToCalendarDate converts a partial statement date ("MM/DD" or "MM-DD") plus
// the externally supplied statement year into a full timestamp. The time of
// day is pinned to local noon, never midnight, so that a later rendering in
// a different timezone cannot shift the date to the previous or next
// calendar day. Returns ok=false for a zero or out-of-range month/day;
// callers treat that as "reject this candidate line", not a hard failure.
func ToCalendarDate(partial string, year int) (time.Time, bool) {
	m := partialDatePattern.FindStringSubmatch(partial)
	if m == nil {
		return time.Time{}, false
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (02/30 becomes March); treat that as
	// an invalid statement date.
	if int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// startsNewRecord reports whether a line begins with a MM/DD date prefix,
// which marks the start of the next transaction record.
func startsNewRecord(line string) bool {
	return dateLinePrefix.MatchString(line)
}
