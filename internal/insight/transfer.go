package insight

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/dotori/internal/domain"
)

// ReasonCategory groups transfer reasons. A result carries at most one
// reason per category.
type ReasonCategory string

const (
	ReasonClassDissatisfaction ReasonCategory = "class_dissatisfaction"
	ReasonTeacherTurnover      ReasonCategory = "teacher_turnover"
	ReasonDirectorDistrust     ReasonCategory = "director_distrust"
	ReasonFacilityPoor         ReasonCategory = "facility_poor"
	ReasonPublicWaitlist       ReasonCategory = "public_waitlist"
	ReasonRelocation           ReasonCategory = "relocation"
	ReasonSiblingSeparation    ReasonCategory = "sibling_separation"
	ReasonProgramMismatch      ReasonCategory = "program_mismatch"
	ReasonSafetyConcern        ReasonCategory = "safety_concern"
)

type TransferReason struct {
	Category  ReasonCategory   `json:"category"`
	Text      string           `json:"text"`
	Sentiment domain.Sentiment `json:"sentiment"`
	Source    string           `json:"source"`
}

// TransferInput describes the facility a parent is considering leaving.
// PreviousFacility, when set, is where the family was before, for address
// comparison.
type TransferInput struct {
	Facility          *domain.Facility `json:"facility" yaml:"facility"`
	PreviousFacility  *domain.Facility `json:"previousFacility,omitempty" yaml:"previousFacility,omitempty"`
	SiblingCount      int              `json:"siblingCount,omitempty" yaml:"siblingCount,omitempty"`
	PublicWaitlistWon bool             `json:"publicWaitlistWon,omitempty" yaml:"publicWaitlistWon,omitempty"`
}

// Thresholds for the derived transfer signals.
const (
	crowdedChildrenPerTeacher = 10
	crowdedOccupancy          = 0.85
	thinStaffTeachers         = 2
	thinStaffCapacity         = 40
	poorRating                = 3.0
	poorRatingMinReviews      = 3
	relocationKm              = 2.0
	narrowFeatureCount        = 1
	broadFeatureCount         = 10
	safetyOccupancy           = 0.75
)

var safetyKeywords = []string{"CCTV", "안전", "보안"}

// distancePattern reads "2.4km", "850 m" or "1,200m". The unit must end
// the word so "3 miles" does not read as metres.
var distancePattern = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*(km|m)\b`)

// BuildTransferReasons runs every transfer check against in.Facility and
// keeps the first reason found for each category. There is no cap.
func BuildTransferReasons(in TransferInput) []TransferReason {
	if in.Facility == nil {
		return nil
	}

	checks := []func(TransferInput) *TransferReason{
		crowdedClassReason,
		thinStaffReason,
		lowGradeReason,
		poorRatingReason,
		publicWaitlistReason,
		addressRelocationReason,
		distanceRelocationReason,
		siblingReason,
		programReason,
		safetyReason,
	}

	var reasons []TransferReason
	seen := make(map[ReasonCategory]bool)
	for _, check := range checks {
		r := check(in)
		if r == nil || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		reasons = append(reasons, *r)
	}
	return reasons
}

func crowdedClassReason(in TransferInput) *TransferReason {
	f := in.Facility
	if f.TeacherCount == nil || *f.TeacherCount <= 0 {
		return nil
	}
	perTeacher := float64(f.Capacity.Current) / float64(*f.TeacherCount)
	if perTeacher < crowdedChildrenPerTeacher || occupancy(f) < crowdedOccupancy {
		return nil
	}
	return &TransferReason{
		Category:  ReasonClassDissatisfaction,
		Text:      fmt.Sprintf("교사 1명당 아동 %.1f명으로 반 구성이 빽빽해요. 반편성 결과를 꼼꼼히 확인해보세요", perTeacher),
		Sentiment: domain.SentimentCaution,
		Source:    "반 구성 분석",
	}
}

func thinStaffReason(in TransferInput) *TransferReason {
	f := in.Facility
	if f.TeacherCount == nil || *f.TeacherCount > thinStaffTeachers || f.Capacity.Total <= thinStaffCapacity {
		return nil
	}
	return &TransferReason{
		Category:  ReasonTeacherTurnover,
		Text:      fmt.Sprintf("정원 %d명에 교사 %d명이 등록되어 있어요. 교사 교체가 잦은지 확인해보세요", f.Capacity.Total, *f.TeacherCount),
		Sentiment: domain.SentimentCaution,
		Source:    "인력 구성 분석",
	}
}

func lowGradeReason(in TransferInput) *TransferReason {
	f := in.Facility
	if f.EvaluationGrade != "D" || f.Rating <= 0 {
		return nil
	}
	return &TransferReason{
		Category:  ReasonDirectorDistrust,
		Text:      "평가인증 D등급이에요. 원장님과 운영 방침을 직접 상담해보세요",
		Sentiment: domain.SentimentCaution,
		Source:    "평가 등급 분석",
	}
}

func poorRatingReason(in TransferInput) *TransferReason {
	f := in.Facility
	if f.Rating <= 0 || f.Rating >= poorRating || f.ReviewCount < poorRatingMinReviews {
		return nil
	}
	return &TransferReason{
		Category:  ReasonFacilityPoor,
		Text:      fmt.Sprintf("평점 %s점 (%d개 리뷰)으로 만족도가 낮은 편이에요", trimFloat(f.Rating), f.ReviewCount),
		Sentiment: domain.SentimentCaution,
		Source:    "이용자 리뷰 분석",
	}
}

func publicWaitlistReason(in TransferInput) *TransferReason {
	f := in.Facility
	if f.Type != domain.TypePublic || f.Capacity.Waiting <= 0 || in.PublicWaitlistWon {
		return nil
	}
	return &TransferReason{
		Category:  ReasonPublicWaitlist,
		Text:      fmt.Sprintf("국공립 대기 %d명이에요. 당첨 전까지 다른 시설도 함께 살펴보세요", f.Capacity.Waiting),
		Sentiment: domain.SentimentNeutral,
		Source:    "대기 현황",
	}
}

// district is the first two address tokens, or "" when the address has
// fewer.
func district(address string) string {
	fields := strings.Fields(address)
	if len(fields) < 2 {
		return ""
	}
	return fields[0] + " " + fields[1]
}

func addressRelocationReason(in TransferInput) *TransferReason {
	if in.PreviousFacility == nil {
		return nil
	}
	cur, prev := district(in.Facility.Address), district(in.PreviousFacility.Address)
	if cur == "" || prev == "" || cur == prev {
		return nil
	}
	return &TransferReason{
		Category:  ReasonRelocation,
		Text:      fmt.Sprintf("%s에서 %s(으)로 행정동이 바뀌어요. 이사에 맞춰 가까운 시설을 찾아보세요", prev, cur),
		Sentiment: domain.SentimentNeutral,
		Source:    "주소 비교",
	}
}

// parseKm reads the first distance in s, such as "2.4km" or "850 m".
func parseKm(s string) (float64, bool) {
	m := distancePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if m[2] == "m" {
		v /= 1000
	}
	return v, true
}

func distanceRelocationReason(in TransferInput) *TransferReason {
	km, ok := parseKm(in.Facility.Distance)
	if !ok || km < relocationKm {
		return nil
	}
	return &TransferReason{
		Category:  ReasonRelocation,
		Text:      fmt.Sprintf("집에서 %skm 떨어져 있어요. 등하원 동선을 다시 따져보세요", trimFloat(km)),
		Sentiment: domain.SentimentNeutral,
		Source:    "거리 분석",
	}
}

func siblingReason(in TransferInput) *TransferReason {
	if in.SiblingCount <= 1 {
		return nil
	}
	return &TransferReason{
		Category:  ReasonSiblingSeparation,
		Text:      fmt.Sprintf("자녀 %d명이 함께 다닐 수 있는지 확인해보세요. 형제 동반 입소 가점이 있어요", in.SiblingCount),
		Sentiment: domain.SentimentNeutral,
		Source:    "가족 구성",
	}
}

func programReason(in TransferInput) *TransferReason {
	n := len(in.Facility.Features)
	var text string
	switch {
	case n <= narrowFeatureCount:
		text = "등록된 프로그램 정보가 적어요. 원하는 활동이 있는지 직접 문의해보세요"
	case n >= broadFeatureCount:
		text = "프로그램이 매우 다양해요. 아이에게 맞는 활동 위주인지 확인해보세요"
	default:
		return nil
	}
	return &TransferReason{
		Category:  ReasonProgramMismatch,
		Text:      text,
		Sentiment: domain.SentimentNeutral,
		Source:    "시설 특징 분석",
	}
}

func safetyReason(in TransferInput) *TransferReason {
	f := in.Facility
	for _, kw := range safetyKeywords {
		if f.HasFeature(kw) {
			return nil
		}
	}
	if occupancy(f) < safetyOccupancy {
		return nil
	}
	return &TransferReason{
		Category:  ReasonSafetyConcern,
		Text:      fmt.Sprintf("충원율 %d%%인데 안전 관련 정보가 없어요. CCTV와 안전 관리 현황을 확인해보세요", percent(occupancy(f))),
		Sentiment: domain.SentimentCaution,
		Source:    "안전 정보 분석",
	}
}
