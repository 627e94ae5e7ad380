// Package report builds side-by-side comparison reports for two or more
// facilities.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/dotori/internal/childage"
	"github.com/alexanderramin/dotori/internal/domain"
)

// MaxFeatureRows caps the feature comparison section.
const MaxFeatureRows = 8

// Item is one comparison row. Values align 1:1 with Report.Facilities and
// HighlightIndex, when set, indexes into Values.
type Item struct {
	Label          string   `json:"label"`
	Values         []string `json:"values"`
	HighlightIndex *int     `json:"highlightIndex,omitempty"`
}

type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

type FacilityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Report struct {
	Title       string        `json:"title"`
	Facilities  []FacilityRef `json:"facilities"`
	Sections    []Section     `json:"sections"`
	Summary     string        `json:"summary"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// Section returns the section with the given title, or nil.
func (r *Report) Section(title string) *Section {
	for i := range r.Sections {
		if r.Sections[i].Title == title {
			return &r.Sections[i]
		}
	}
	return nil
}

// Item returns the row with the given label, or nil.
func (s *Section) Item(label string) *Item {
	for i := range s.Items {
		if s.Items[i].Label == label {
			return &s.Items[i]
		}
	}
	return nil
}

// Section titles.
const (
	SectionBasic     = "기본 정보"
	SectionCapacity  = "정원 현황"
	SectionQuality   = "품질 평가"
	SectionOperation = "운영 정보"
	SectionFeatures  = "특징 비교"
)

// BuildReport compares facilities in the given order. child may be nil;
// now stamps the report and ages the child.
//
// The capacity section shows totals and waitlist counts only. The current
// headcount is never reported.
func BuildReport(facilities []domain.Facility, child *domain.Child, now time.Time) *Report {
	names := make([]string, len(facilities))
	refs := make([]FacilityRef, len(facilities))
	for i, f := range facilities {
		names[i] = f.Name
		refs[i] = FacilityRef{ID: f.ID, Name: f.Name}
	}

	sections := []Section{
		basicSection(facilities),
		capacitySection(facilities),
		qualitySection(facilities),
		operationSection(facilities),
	}
	if s, ok := featureSection(facilities); ok {
		sections = append(sections, s)
	}

	summary := buildSummary(facilities, child, now)
	if summary == "" {
		summary = strings.Join(names, ", ") + " 비교 리포트예요. 각 항목을 비교해보세요."
	}

	return &Report{
		Title:       strings.Join(names, " vs ") + " 비교 리포트",
		Facilities:  refs,
		Sections:    sections,
		Summary:     summary,
		GeneratedAt: now,
	}
}

// column maps every facility to one cell.
func column(facilities []domain.Facility, cell func(domain.Facility) string) []string {
	values := make([]string, len(facilities))
	for i, f := range facilities {
		values[i] = cell(f)
	}
	return values
}

func statusLabel(s domain.FacilityStatus) string {
	switch s {
	case domain.StatusAvailable:
		return "입소 가능"
	case domain.StatusWaiting:
		return "대기"
	default:
		return "마감"
	}
}

const vacancyLabel = "빈자리 있음"

func availabilityLabel(s domain.FacilityStatus) string {
	switch s {
	case domain.StatusAvailable:
		return vacancyLabel
	case domain.StatusWaiting:
		return "대기"
	default:
		return "마감"
	}
}

func basicSection(facilities []domain.Facility) Section {
	return Section{
		Title: SectionBasic,
		Items: []Item{
			{Label: "유형", Values: column(facilities, func(f domain.Facility) string { return string(f.Type) })},
			{Label: "상태", Values: column(facilities, func(f domain.Facility) string { return statusLabel(f.Status) })},
			{Label: "주소", Values: column(facilities, func(f domain.Facility) string { return f.Address })},
		},
	}
}

func capacitySection(facilities []domain.Facility) Section {
	availability := column(facilities, func(f domain.Facility) string { return availabilityLabel(f.Status) })

	var highlight *int
	for i, v := range availability {
		if v == vacancyLabel {
			highlight = domain.IntPtr(i)
			break
		}
	}

	return Section{
		Title: SectionCapacity,
		Items: []Item{
			{Label: "정원", Values: column(facilities, func(f domain.Facility) string {
				return fmt.Sprintf("%d명", f.Capacity.Total)
			})},
			{Label: "입소 상태", Values: availability, HighlightIndex: highlight},
			{Label: "대기", Values: column(facilities, func(f domain.Facility) string {
				if f.Capacity.Waiting > 0 {
					return fmt.Sprintf("%d명", f.Capacity.Waiting)
				}
				return "없음"
			})},
		},
	}
}

// formatRating renders 4.5 as "4.5" and 4 as "4".
func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// bestRated returns the index of the first facility with the maximum
// rating, or -1 when no rating is above zero.
func bestRated(facilities []domain.Facility) int {
	best := -1
	for i, f := range facilities {
		if f.Rating > 0 && (best < 0 || f.Rating > facilities[best].Rating) {
			best = i
		}
	}
	return best
}

func qualitySection(facilities []domain.Facility) Section {
	var highlight *int
	if i := bestRated(facilities); i >= 0 {
		highlight = domain.IntPtr(i)
	}

	return Section{
		Title: SectionQuality,
		Items: []Item{
			{Label: "평점", HighlightIndex: highlight, Values: column(facilities, func(f domain.Facility) string {
				if f.Rating > 0 {
					return formatRating(f.Rating) + "점"
				}
				return "정보 없음"
			})},
			{Label: "리뷰 수", Values: column(facilities, func(f domain.Facility) string {
				return fmt.Sprintf("%d개", f.ReviewCount)
			})},
			{Label: "평가등급", Values: column(facilities, func(f domain.Facility) string {
				return domain.CoalesceStr(f.EvaluationGrade, "미평가")
			})},
		},
	}
}

func operationSection(facilities []domain.Facility) Section {
	return Section{
		Title: SectionOperation,
		Items: []Item{
			{Label: "운영시간", Values: column(facilities, func(f domain.Facility) string {
				if f.OperatingHours == nil {
					return "정보 없음"
				}
				return f.OperatingHours.Open + "~" + f.OperatingHours.Close
			})},
			{Label: "연장보육", Values: column(facilities, func(f domain.Facility) string {
				if f.ExtendedCare() {
					return "운영"
				}
				return "미운영"
			})},
		},
	}
}

// featureSection lists distinct tags in first-seen order, capped at
// MaxFeatureRows. It reports false when no facility carries a tag.
func featureSection(facilities []domain.Facility) (Section, bool) {
	seen := make(map[string]bool)
	var tags []string
	for _, f := range facilities {
		for _, tag := range f.Features {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	if len(tags) == 0 {
		return Section{}, false
	}
	if len(tags) > MaxFeatureRows {
		tags = tags[:MaxFeatureRows]
	}

	items := make([]Item, len(tags))
	for i, tag := range tags {
		items[i] = Item{Label: tag, Values: column(facilities, func(f domain.Facility) string {
			if hasTag(f, tag) {
				return "O"
			}
			return "-"
		})}
	}
	return Section{Title: SectionFeatures, Items: items}, true
}

func hasTag(f domain.Facility, tag string) bool {
	for _, t := range f.Features {
		if t == tag {
			return true
		}
	}
	return false
}

// buildSummary joins the clauses whose conditions hold, or returns "".
func buildSummary(facilities []domain.Facility, child *domain.Child, now time.Time) string {
	var parts []string

	var open []string
	for _, f := range facilities {
		if f.Status == domain.StatusAvailable {
			open = append(open, f.Name)
		}
	}
	switch len(open) {
	case 0:
	case 1:
		parts = append(parts, open[0]+"만 현재 입소 가능해요")
	default:
		parts = append(parts, strings.Join(open, ", ")+" 모두 입소 가능 상태예요")
	}

	rated := 0
	for _, f := range facilities {
		if f.Rating > 0 {
			rated++
		}
	}
	if rated >= 2 {
		best := facilities[bestRated(facilities)]
		parts = append(parts, fmt.Sprintf("평점은 %s이(가) %s점으로 가장 높아요", best.Name, formatRating(best.Rating)))
	}

	if clause := homeCareClause(facilities, child, now); clause != "" {
		parts = append(parts, clause)
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

// homeCareClause suggests a home-style facility from the set for children
// under 24 months.
func homeCareClause(facilities []domain.Facility, child *domain.Child, now time.Time) string {
	if child == nil {
		return ""
	}
	months := childage.MonthsOld(child.BirthDate, now)
	if months < 0 || months >= 24 {
		return ""
	}
	for _, f := range facilities {
		if f.Type == domain.TypeHome {
			name := domain.CoalesceStr(strings.TrimSpace(child.Name), "아이")
			return fmt.Sprintf("%s 나이(%s)에는 가정어린이집(%s)도 고려해보세요", name, childage.FormatAge(months), f.Name)
		}
	}
	return ""
}
