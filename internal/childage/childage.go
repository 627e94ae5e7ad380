// Package childage computes a child's age in months and the Korean
// childcare class assignment for a given academic year.
//
// Month arithmetic ignores the day of month: a child born on the 31st is one
// month old on the 1st of the next month. Thresholds elsewhere (12, 18, 24
// and 36 months) are calibrated against this rule.
package childage

import (
	"fmt"
	"regexp"
	"time"

	"github.com/alexanderramin/dotori/internal/domain"
)

// Unknown is returned by MonthsOld when the birth date cannot be parsed.
// It is negative so that no "younger than N months" comparison accepts it.
const Unknown = -1

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a calendar date in YYYY-MM-DD form, or a full RFC 3339
// timestamp. Dates that do not exist on the calendar are rejected.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// MonthsOld returns the whole-month difference between ref and birthDate.
func MonthsOld(birthDate string, ref time.Time) int {
	birth, ok := ParseDate(birthDate)
	if !ok {
		return Unknown
	}
	return (ref.Year()-birth.Year())*12 + int(ref.Month()) - int(birth.Month())
}

// FormatAge renders an age in months as 개월 below one year and 만 N세
// (plus remaining months) otherwise.
func FormatAge(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d개월", months)
	}
	years, rest := months/12, months%12
	if rest == 0 {
		return fmt.Sprintf("만 %d세", years)
	}
	return fmt.Sprintf("만 %d세 %d개월", years, rest)
}

// ClassInfo is the class assignment for one academic year. Age is not
// clamped above 5 even though Name is.
type ClassInfo struct {
	Age  int    `json:"classAge"`
	Name string `json:"className"`
}

// AcademicYear returns the school year in effect at now. The year turns
// over on March 1st.
func AcademicYear(now time.Time) int {
	if now.Month() >= time.March {
		return now.Year()
	}
	return now.Year() - 1
}

// ClassAge returns the class a child born on birthDate is placed in for
// targetYear. Future and unparseable birth dates yield age 0.
func ClassAge(birthDate string, targetYear int) ClassInfo {
	age := 0
	if birth, ok := ParseDate(birthDate); ok {
		age = max(targetYear-birth.Year(), 0)
	}
	return ClassInfo{Age: age, Name: className(age)}
}

// CurrentClassAge is ClassAge for the academic year in effect at now.
func CurrentClassAge(birthDate string, now time.Time) ClassInfo {
	return ClassAge(birthDate, AcademicYear(now))
}

func className(age int) string {
	switch {
	case age <= 0:
		return "영아반(0세)"
	case age <= 2:
		return fmt.Sprintf("영아반(%d세)", age)
	case age <= 5:
		return fmt.Sprintf("유아반(%d세)", age)
	default:
		return "유아반(5세)"
	}
}

// AgeClassLabel returns the 만N세반 label as of March 1st of ref's year.
// It accepts only strict YYYY-MM-DD dates and falls back to 만0세반.
func AgeClassLabel(birthDate string, ref time.Time) string {
	const fallback = "만0세반"
	if !isoDate.MatchString(birthDate) {
		return fallback
	}
	birth, err := time.Parse(time.DateOnly, birthDate)
	if err != nil {
		return fallback
	}

	age := ref.Year() - birth.Year()
	if birth.Month() > time.March || (birth.Month() == time.March && birth.Day() > 1) {
		age--
	}
	age = min(max(age, 0), 5)
	return fmt.Sprintf("만%d세반", age)
}

// Youngest returns the child with the latest birth date, or nil when
// children is empty. Children whose birth date does not parse never
// displace the current pick.
func Youngest(children []domain.Child) *domain.Child {
	if len(children) == 0 {
		return nil
	}
	pick := &children[0]
	pickBirth, pickOK := ParseDate(pick.BirthDate)
	for i := 1; i < len(children); i++ {
		birth, ok := ParseDate(children[i].BirthDate)
		if !ok || !pickOK {
			continue
		}
		if birth.After(pickBirth) {
			pick, pickBirth = &children[i], birth
		}
	}
	return pick
}
