package checklist

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dotori/internal/childage"
	"github.com/alexanderramin/dotori/internal/domain"
)

// Facility checklist category titles.
const (
	CategoryDocuments     = "서류 준비"
	CategoryFacilityCheck = "시설 확인"
	CategoryTransfer      = "이동 체크리스트"
	CategoryChildSupplies = "아이 준비물"
	CategoryPreEnrollment = "입소 전 확인"
)

// Age gates for the child supplies category. Bottle items apply strictly
// below 18 months and hygiene items from 24 months on, so 18 to 23 months
// gets neither.
const (
	feedingUntilMonths = 18
	hygieneFromMonths  = 24
)

var enrollmentDocs = []Item{
	{ID: "doc_1", Text: "입소신청서 작성", Detail: "아이사랑포털(childcare.go.kr)에서 온라인 신청 가능"},
	{ID: "doc_2", Text: "주민등록등본 발급", Detail: "정부24에서 무료 발급 가능 (3개월 이내)"},
	{ID: "doc_3", Text: "건강검진 결과표", Detail: "영유아 건강검진 결과 (6개월 이내)"},
	{ID: "doc_4", Text: "예방접종 증명서", Detail: "질병관리청 예방접종도우미에서 발급"},
}

var dualIncomeDocs = []Item{
	{ID: "doc_5", Text: "재직증명서 (양육자)", Detail: "국공립 맞벌이 가산점에 필요"},
	{ID: "doc_6", Text: "건강보험 자격득실 확인서", Detail: "맞벌이 증빙용"},
}

var transferSteps = []Item{
	{ID: "transfer_1", Text: "새 시설 방문 예약", Detail: "방문 일정과 가능 시간을 미리 확정해 둔 뒤 입소 계획을 세워요"},
	{ID: "transfer_2", Text: "현 시설 퇴소 통보 (최소 1개월 전)", Detail: "퇴소 사유와 시작일을 알려 계약 조건을 확인하세요"},
	{ID: "transfer_7", Text: "현재 시설에 퇴소 예정 통보 (30일 전 권장)"},
	{ID: "transfer_8", Text: "입소 예정 시설에 입소 확정 연락"},
	{ID: "transfer_9", Text: "보육료 지원 변경 신청 (아이사랑카드)"},
	{ID: "transfer_3", Text: "아이사랑포털 퇴소 처리", Detail: "아이사랑 앱/웹에서 퇴소 신청을 마무리해요"},
	{ID: "transfer_4", Text: "새 시설 입소 신청 서류 준비", Detail: "주민센터 발급서류 및 예방접종 증명서를 미리 준비하세요"},
	{ID: "transfer_5", Text: "입소 일정 조율 (공백 최소화)", Detail: "현 시설 퇴소일과 새 시설 시작일이 이어지도록 조율해요"},
	{ID: "transfer_6", Text: "아이 감정 케어 준비 (새 환경 적응)", Detail: "낯선 환경 적응을 위한 루틴/안심 물건을 준비하면 좋아요"},
}

var childSupplies = []Item{
	{ID: "child_1", Text: "낮잠 이불세트"},
	{ID: "child_2", Text: "여벌 옷 2~3벌"},
	{ID: "child_3", Text: "실내화", Detail: "이름표 부착"},
	{ID: "child_4", Text: "물티슈/기저귀 (영아)"},
	{ID: "child_5", Text: "이름 라벨 스티커"},
}

var preEnrollment = []Item{
	{ID: "pre_1", Text: "적응 프로그램 일정 확인", Detail: "보통 1~2주 적응 기간 운영"},
	{ID: "pre_2", Text: "등/하원 시간 및 방법 확인"},
	{ID: "pre_3", Text: "비상연락처 제출"},
	{ID: "pre_4", Text: "보육료 결제 방법 확인", Detail: "아이행복카드 또는 국민행복카드 준비"},
}

// BuildForFacility builds the preparation checklist for enrolling child at
// f. Either may be nil.
func BuildForFacility(f *domain.Facility, child *domain.Child, now time.Time) *Checklist {
	docs := cloneItems(enrollmentDocs)
	if f != nil && f.Type == domain.TypePublic {
		docs = append(docs, cloneItems(dualIncomeDocs)...)
	}

	categories := []Category{
		{Title: CategoryDocuments, Items: docs},
		{Title: CategoryFacilityCheck, Items: facilityChecks(f)},
		{Title: CategoryTransfer, Items: cloneItems(transferSteps)},
		{Title: CategoryChildSupplies, Items: supplies(child, now)},
		{Title: CategoryPreEnrollment, Items: cloneItems(preEnrollment)},
	}

	c := &Checklist{
		Title:       "시설 입소 준비 체크리스트",
		Categories:  categories,
		GeneratedAt: now,
	}
	if f != nil {
		c.Title = f.Name + " 입소 준비 체크리스트"
		c.FacilityID = f.ID
		c.FacilityName = f.Name
	}
	return c
}

func facilityChecks(f *domain.Facility) []Item {
	visit := Item{ID: "fac_1", Text: "시설 방문 예약", Detail: "관심 시설에 전화로 방문 예약"}
	if f != nil {
		visit.Detail = fmt.Sprintf("%s에 전화 (%s)", f.Name, domain.CoalesceStr(f.Phone, "전화번호 확인 필요"))
	}

	items := []Item{
		visit,
		{ID: "fac_2", Text: "CCTV 설치 여부 확인"},
		{ID: "fac_3", Text: "급식 메뉴/알레르기 대응 확인"},
		{ID: "fac_4", Text: "교사 대 아동 비율 확인", Detail: "0세: 1:3, 1세: 1:5, 2세: 1:7, 3세 이상: 1:15 기준"},
	}
	if f == nil {
		return items
	}
	if grade := strings.TrimSpace(f.EvaluationGrade); grade != "" {
		items = append(items, Item{
			ID:     "fac_5",
			Text:   fmt.Sprintf("평가인증 %s등급 확인", grade),
			Detail: "한국보육진흥원 홈페이지에서 상세 결과 확인 가능",
		})
	}
	if f.ExtendedCare() {
		items = append(items, Item{
			ID:     "fac_6",
			Text:   "연장보육 신청 방법 확인",
			Detail: fmt.Sprintf("운영시간: %s~%s", f.OperatingHours.Open, f.OperatingHours.Close),
		})
	}
	return items
}

func supplies(child *domain.Child, now time.Time) []Item {
	items := cloneItems(childSupplies)
	if child == nil {
		return items
	}
	months := childage.MonthsOld(child.BirthDate, now)
	if months < 0 {
		return items
	}

	basis := fmt.Sprintf("%s (%s) 나이 기준", domain.CoalesceStr(strings.TrimSpace(child.Name), "아이"), childage.FormatAge(months))
	if months < feedingUntilMonths {
		items = append(items, Item{ID: "child_6", Text: "젖병/분유/이유식 용기", Detail: basis})
	}
	if months >= hygieneFromMonths {
		items = append(items, Item{ID: "child_7", Text: "개인 컵/칫솔/치약", Detail: basis})
	}
	return items
}
