// Package insight derives short, sourced rationale sentences from facility
// data: why a facility looks good or risky, and why a parent might be
// looking to move.
package insight

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/dotori/internal/childage"
	"github.com/alexanderramin/dotori/internal/domain"
)

// DefaultMaxInsights caps BuildInsights.
const DefaultMaxInsights = 5

type Insight struct {
	Text      string           `json:"text"`
	Sentiment domain.Sentiment `json:"sentiment"`
	Source    string           `json:"source"`
}

// Insight sources.
const (
	SourceCapacity    = "아이사랑 정원현황"
	SourceWaitlist    = "아이사랑 대기현황"
	SourceScale       = "시설 정보"
	SourceTypeStats   = "보건복지부 통계"
	SourceTypeInfo    = "보건복지부 유형 정보"
	SourceEvaluation  = "한국보육진흥원 평가"
	SourceOperation   = "시설 운영정보"
	SourceReviews     = "이용자 리뷰"
	SourceOccupancy   = "정원 데이터 분석"
	SourceChildMatch  = "아이 맞춤 분석"
	SourceFeatureTags = "시설 특징"
)

var sentimentRank = map[domain.Sentiment]int{
	domain.SentimentPositive: 3,
	domain.SentimentCaution:  2,
	domain.SentimentNeutral:  1,
}

// input is what each insight check reads.
type input struct {
	facility  *domain.Facility
	child     *domain.Child
	now       time.Time
	occupancy float64
}

// BuildInsights runs every check against f and returns at most
// DefaultMaxInsights results, positive first, then caution, then neutral.
// child may be nil.
func BuildInsights(f *domain.Facility, child *domain.Child, now time.Time) []Insight {
	return BuildInsightsN(f, child, now, DefaultMaxInsights)
}

// BuildInsightsN is BuildInsights with an explicit cap. A non-positive limit
// falls back to DefaultMaxInsights.
func BuildInsightsN(f *domain.Facility, child *domain.Child, now time.Time, limit int) []Insight {
	if limit <= 0 {
		limit = DefaultMaxInsights
	}
	in := input{facility: f, child: child, now: now, occupancy: occupancy(f)}

	checks := []func(input) *Insight{
		vacancyInsight,
		scaleInsight,
		typeInsight,
		gradeInsight,
		extendedCareInsight,
		ratingInsight,
		competitionInsight,
		childMatchInsight,
		featureInsight,
	}

	insights := make([]Insight, 0, len(checks))
	for _, check := range checks {
		if ins := check(in); ins != nil {
			insights = append(insights, *ins)
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return sentimentRank[insights[i].Sentiment] > sentimentRank[insights[j].Sentiment]
	})
	if len(insights) > limit {
		insights = insights[:limit]
	}
	return insights
}

// occupancy is current over total, treating a zero total as one seat.
func occupancy(f *domain.Facility) float64 {
	total := max(f.Capacity.Total, 1)
	return float64(f.Capacity.Current) / float64(total)
}

func percent(rate float64) int {
	return int(math.Round(rate * 100))
}

// trimFloat renders 4.5 as "4.5" and 4 as "4".
func trimFloat(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func vacancyInsight(in input) *Insight {
	f := in.facility
	switch {
	case f.Status == domain.StatusAvailable && f.Vacancy() > 0:
		return &Insight{
			Text:      fmt.Sprintf("현재 %d자리 여석이 있어요 (정원 %d명 중 %d명 등원)", f.Vacancy(), f.Capacity.Total, f.Capacity.Current),
			Sentiment: domain.SentimentPositive,
			Source:    SourceCapacity,
		}
	case f.Status == domain.StatusWaiting:
		return &Insight{
			Text:      fmt.Sprintf("대기 %d명이에요. 평균 대기 기간은 시설마다 달라요", f.Capacity.Waiting),
			Sentiment: domain.SentimentCaution,
			Source:    SourceWaitlist,
		}
	case f.Status == domain.StatusFull:
		return &Insight{
			Text:      fmt.Sprintf("현재 정원이 가득 차 있어요 (%d/%d명)", f.Capacity.Current, f.Capacity.Total),
			Sentiment: domain.SentimentCaution,
			Source:    SourceCapacity,
		}
	}
	return nil
}

func scaleInsight(in input) *Insight {
	total := in.facility.Capacity.Total
	switch {
	case total >= 100:
		return &Insight{
			Text:      fmt.Sprintf("정원 %d명 규모의 대형 시설이에요. 반별 인원이 안정적일 수 있어요", total),
			Sentiment: domain.SentimentPositive,
			Source:    SourceScale,
		}
	case total <= 20:
		return &Insight{
			Text:      fmt.Sprintf("정원 %d명 소규모 시설이에요. 개별 케어에 유리할 수 있어요", total),
			Sentiment: domain.SentimentNeutral,
			Source:    SourceScale,
		}
	}
	return nil
}

var typeCommentary = map[domain.FacilityType]Insight{
	domain.TypePublic: {
		Text:   "국공립은 보육료가 저렴하고 평가인증 비율이 높아요 (경쟁률 높음)",
		Source: SourceTypeStats,
	},
	domain.TypeHome: {
		Text:   "가정어린이집은 소규모로 가정적인 분위기예요. 영아에게 적합해요",
		Source: SourceTypeInfo,
	},
	domain.TypeWorkplace: {
		Text:   "직장어린이집은 출퇴근 동선에 편리하고 기업 지원이 있어요",
		Source: SourceTypeInfo,
	},
	domain.TypePrivate: {
		Text:   "민간어린이집은 다양한 교육 프로그램을 운영하는 경우가 많아요",
		Source: SourceTypeInfo,
	},
}

func typeInsight(in input) *Insight {
	c, ok := typeCommentary[in.facility.Type]
	if !ok {
		return nil
	}
	c.Sentiment = domain.SentimentNeutral
	return &c
}

var gradeCommentary = map[string]Insight{
	"A": {Text: "평가인증 A등급이에요. 최상위 보육 품질로 인정받았어요", Sentiment: domain.SentimentPositive},
	"B": {Text: "평가인증 B등급이에요. 양호한 보육 환경이에요", Sentiment: domain.SentimentPositive},
	"C": {Text: "평가인증 C등급이에요. 기본 요건을 충족해요", Sentiment: domain.SentimentNeutral},
	"D": {Text: "평가인증 D등급이에요. 개선이 진행 중일 수 있어요", Sentiment: domain.SentimentCaution},
}

func gradeInsight(in input) *Insight {
	c, ok := gradeCommentary[in.facility.EvaluationGrade]
	if !ok {
		return nil
	}
	c.Source = SourceEvaluation
	return &c
}

func extendedCareInsight(in input) *Insight {
	if !in.facility.ExtendedCare() {
		return nil
	}
	return &Insight{
		Text:      fmt.Sprintf("연장보육(%s까지) 운영 시설이에요. 맞벌이 가정에 유리해요", in.facility.OperatingHours.Close),
		Sentiment: domain.SentimentPositive,
		Source:    SourceOperation,
	}
}

func ratingInsight(in input) *Insight {
	f := in.facility
	switch {
	case f.Rating >= 4.5 && f.ReviewCount >= 5:
		return &Insight{
			Text:      fmt.Sprintf("평점 %s점 (%d개 리뷰). 이용자 만족도가 높아요", trimFloat(f.Rating), f.ReviewCount),
			Sentiment: domain.SentimentPositive,
			Source:    SourceReviews,
		}
	case f.Rating > 0 && f.Rating < 3.0 && f.ReviewCount >= 3:
		return &Insight{
			Text:      fmt.Sprintf("평점 %s점 (%d개 리뷰). 최근 리뷰를 확인해보세요", trimFloat(f.Rating), f.ReviewCount),
			Sentiment: domain.SentimentCaution,
			Source:    SourceReviews,
		}
	}
	return nil
}

func competitionInsight(in input) *Insight {
	f := in.facility
	switch {
	case in.occupancy >= 0.95 && f.Capacity.Waiting > 10:
		return &Insight{
			Text:      fmt.Sprintf("충원율 %d%%에 대기 %d명. 인기 시설이에요", percent(in.occupancy), f.Capacity.Waiting),
			Sentiment: domain.SentimentCaution,
			Source:    SourceOccupancy,
		}
	case in.occupancy < 0.7 && f.Status == domain.StatusAvailable:
		return &Insight{
			Text:      fmt.Sprintf("충원율 %d%%로 여유가 있어요. 입소 확률이 높아요", percent(in.occupancy)),
			Sentiment: domain.SentimentPositive,
			Source:    SourceOccupancy,
		}
	}
	return nil
}

func hasExactFeature(f *domain.Facility, tag string) bool {
	for _, t := range f.Features {
		if t == tag {
			return true
		}
	}
	return false
}

// childMatchInsight is skipped when the child's age is unknown or the
// birth date lies after now.
func childMatchInsight(in input) *Insight {
	if in.child == nil {
		return nil
	}
	months := childage.MonthsOld(in.child.BirthDate, in.now)
	if months < 0 {
		return nil
	}
	name := in.child.Name

	switch {
	case months < 12 && in.facility.Type == domain.TypeHome:
		return &Insight{
			Text:      fmt.Sprintf("%s은(는) %d개월이에요. 가정어린이집은 영아 케어에 적합해요", name, months),
			Sentiment: domain.SentimentPositive,
			Source:    SourceChildMatch,
		}
	case months >= 36 && hasExactFeature(in.facility, "누리과정"):
		return &Insight{
			Text:      fmt.Sprintf("%s 나이에 맞는 누리과정 운영 시설이에요", name),
			Sentiment: domain.SentimentPositive,
			Source:    SourceChildMatch,
		}
	default:
		return &Insight{
			Text:      fmt.Sprintf("%s(%s) 연령 기준으로 분석했어요", name, childage.FormatAge(months)),
			Sentiment: domain.SentimentNeutral,
			Source:    SourceChildMatch,
		}
	}
}

var featureHighlights = []struct {
	keyword string
	text    string
}{
	{"텃밭", "텃밭 활동으로 자연 체험 교육을 해요"},
	{"영어", "영어 프로그램을 운영하고 있어요"},
	{"숲", "숲 체험 활동이 있어 야외 활동이 풍부해요"},
	{"급식", "자체 급식을 운영해요"},
	{"CCTV", "CCTV가 설치되어 있어요"},
	{"차량", "통학 차량을 운영해요"},
}

// featureInsight highlights the first keyword, in table order, that any
// feature tag contains.
func featureInsight(in input) *Insight {
	for _, h := range featureHighlights {
		if in.facility.HasFeature(h.keyword) {
			return &Insight{Text: h.text, Sentiment: domain.SentimentNeutral, Source: SourceFeatureTags}
		}
	}
	return nil
}
