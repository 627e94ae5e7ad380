package childage

import (
	"testing"
	"time"

	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMonthsOld(t *testing.T) {
	cases := []struct {
		name  string
		birth string
		ref   time.Time
		want  int
	}{
		{"one year", "2025-02-15", date(2026, time.February, 15), 12},
		{"six months", "2025-08-15", date(2026, time.February, 15), 6},
		{"same month", "2026-02-01", date(2026, time.February, 15), 0},
		{"same month later day", "2026-03-15", date(2026, time.March, 1), 0},
		{"one day across month boundary", "2026-02-28", date(2026, time.March, 1), 1},
		{"one day across year boundary", "2026-12-31", date(2027, time.January, 1), 1},
		{"rfc3339 timestamp", "2025-02-15T00:00:00Z", date(2026, time.February, 15), 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MonthsOld(tc.birth, tc.ref))
		})
	}
}

func TestMonthsOld_FutureBirthIsNegative(t *testing.T) {
	assert.Less(t, MonthsOld("2027-01-01", date(2026, time.February, 15)), 0)
}

func TestMonthsOld_Unparseable(t *testing.T) {
	ref := date(2026, time.February, 15)
	for _, s := range []string{"", "not-a-date", "2025-02-30", "2025/02/01"} {
		assert.Equal(t, Unknown, MonthsOld(s, ref), "input %q", s)
	}
}

func TestFormatAge(t *testing.T) {
	cases := map[int]string{
		0:  "0개월",
		6:  "6개월",
		11: "11개월",
		12: "만 1세",
		15: "만 1세 3개월",
		24: "만 2세",
		30: "만 2세 6개월",
		37: "만 3세 1개월",
		60: "만 5세",
	}
	for months, want := range cases {
		assert.Equal(t, want, FormatAge(months), "months=%d", months)
	}
}

func TestClassAge(t *testing.T) {
	cases := []struct {
		birth    string
		year     int
		wantAge  int
		wantName string
	}{
		{"2026-01-01", 2026, 0, "영아반(0세)"},
		{"2025-06-01", 2026, 1, "영아반(1세)"},
		{"2024-06-01", 2026, 2, "영아반(2세)"},
		{"2023-03-15", 2026, 3, "유아반(3세)"},
		{"2021-09-01", 2026, 5, "유아반(5세)"},
		{"2019-01-01", 2026, 7, "유아반(5세)"},
		{"2028-01-01", 2026, 0, "영아반(0세)"},
		{"garbage", 2026, 0, "영아반(0세)"},
	}
	for _, tc := range cases {
		got := ClassAge(tc.birth, tc.year)
		assert.Equal(t, tc.wantAge, got.Age, "birth=%s", tc.birth)
		assert.Equal(t, tc.wantName, got.Name, "birth=%s", tc.birth)
	}
}

func TestAcademicYear_TurnsOverInMarch(t *testing.T) {
	assert.Equal(t, 2025, AcademicYear(date(2026, time.February, 28)))
	assert.Equal(t, 2026, AcademicYear(date(2026, time.March, 1)))
	assert.Equal(t, 2026, AcademicYear(date(2026, time.December, 31)))
}

func TestCurrentClassAge_UsesAcademicYear(t *testing.T) {
	got := CurrentClassAge("2023-05-01", date(2026, time.January, 10))
	assert.Equal(t, 2, got.Age)
	assert.Equal(t, "영아반(2세)", got.Name)
}

func TestAgeClassLabel(t *testing.T) {
	ref := date(2026, time.October, 14)
	cases := []struct {
		birth string
		want  string
	}{
		{"2023-03-01", "만3세반"},
		{"2023-03-02", "만2세반"},
		{"2023-02-28", "만3세반"},
		{"2025-12-01", "만0세반"},
		{"2018-01-01", "만5세반"},
		{"2027-01-01", "만0세반"},
		{"2024-02-30", "만0세반"},
		{"2024-13-01", "만0세반"},
		{"20240101", "만0세반"},
		{"", "만0세반"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AgeClassLabel(tc.birth, ref), "birth=%q", tc.birth)
	}
}

func TestYoungest(t *testing.T) {
	children := []domain.Child{
		{ID: "a", BirthDate: "2021-05-01"},
		{ID: "b", BirthDate: "2024-01-10"},
		{ID: "c", BirthDate: "bogus"},
		{ID: "d", BirthDate: "2022-07-07"},
	}
	got := Youngest(children)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)

	assert.Nil(t, Youngest(nil))
}
