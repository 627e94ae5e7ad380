package checklist

import (
	"time"

	"github.com/alexanderramin/dotori/internal/childage"
	"github.com/alexanderramin/dotori/internal/domain"
)

// ProfileInput holds the applicant answers BuildFromProfile works from.
// Region is accepted for callers that collect it; document selection does
// not depend on it.
type ProfileInput struct {
	FacilityType        domain.FacilityType `json:"facilityType" yaml:"facilityType"`
	ChildBirthDate      string              `json:"childBirthDate,omitempty" yaml:"childBirthDate,omitempty"`
	HasMultipleChildren bool                `json:"hasMultipleChildren,omitempty" yaml:"hasMultipleChildren,omitempty"`
	IsDualIncome        bool                `json:"isDualIncome,omitempty" yaml:"isDualIncome,omitempty"`
	IsSingleParent      bool                `json:"isSingleParent,omitempty" yaml:"isSingleParent,omitempty"`
	HasDisability       bool                `json:"hasDisability,omitempty" yaml:"hasDisability,omitempty"`
	Region              string              `json:"region,omitempty" yaml:"region,omitempty"`
}

// Profile checklist category titles.
const (
	CategoryBaseDocs  = "기본 서류"
	CategoryPriority  = "우선순위 가점 서류"
	CategoryReference = "참고 정보"
)

var baseDocs = []Item{
	required("base-1", "어린이집 입소신청서", "아이사랑 포털 또는 어린이집에서 양식 제공"),
	required("base-2", "주민등록등본", "발급일 1개월 이내, 주민센터/정부24에서 발급"),
	required("base-3", "건강보험자격확인서", "국민건강보험공단 사이트에서 발급"),
	required("base-4", "예방접종증명서", "질병관리청 예방접종도우미에서 발급"),
	required("base-5", "건강검진 결과통보서 (영유아)", "국민건강보험공단 건강검진 대상자 확인"),
}

var typeDocs = map[domain.FacilityType][]Item{
	domain.TypePublic: {
		required("public-1", "소득증빙서류", "건강보험료 납부확인서 또는 소득금액증명원"),
		required("public-2", "보육료 지원 결정 통지서", "복지로에서 사전 신청 필요 (아동수당 연계)"),
	},
	domain.TypePrivate: {
		required("private-1", "보육료 지원 결정 통지서", "복지로에서 사전 신청 (양육수당 → 보육료 전환)"),
	},
	domain.TypeHome: {
		required("home-1", "보육료 지원 결정 통지서", "복지로에서 사전 신청"),
	},
	domain.TypeWorkplace: {
		required("work-1", "재직증명서", "회사 인사부서에서 발급 (3개월 이내)"),
		optional("work-2", "사업자등록증 사본 (자영업)", "자영업자의 경우 사업자등록증으로 대체"),
	},
	domain.TypeCooperative: {
		required("coop-1", "협동조합 가입신청서", "해당 어린이집 협동조합에서 양식 제공"),
		required("coop-2", "출자금 납부 확인서", "조합비/출자금 규모는 각 조합별 상이"),
	},
	domain.TypeWelfare: {
		required("welfare-1", "보육료 지원 결정 통지서", "복지로에서 사전 신청"),
	},
	domain.TypeNationalKindergarten: {
		required("kinder-1", "처음학교로 입학 신청 확인서", "처음학교로(go-firstschool.go.kr)에서 온라인 접수"),
		required("kinder-2", "유아학비 지원 신청서", "복지로 또는 주민센터에서 신청"),
	},
	domain.TypePublicKindergarten: {
		required("kinder-1", "처음학교로 입학 신청 확인서", "처음학교로(go-firstschool.go.kr)에서 온라인 접수"),
		required("kinder-2", "유아학비 지원 신청서", "복지로 또는 주민센터에서 신청"),
	},
	domain.TypePrivateKindergarten: {
		required("kinder-private-1", "입학원서", "유치원별 양식, 처음학교로 미참여 시 방문 접수"),
	},
}

// priorityDocs lists the point-scoring documents in fixed order:
// multi-child, dual-income, single-parent, disability.
func priorityDocs(in ProfileInput) []Item {
	var docs []Item
	if in.HasMultipleChildren {
		docs = append(docs, required("priority-multi", "다자녀 증빙 (가족관계증명서)", "자녀 3명 이상 시 입소 우선순위 가점"))
	}
	if in.IsDualIncome {
		docs = append(docs,
			required("priority-dual-1", "맞벌이 증빙 (부 재직증명서)", "3개월 이내 발급, 4대보험 가입 확인"),
			required("priority-dual-2", "맞벌이 증빙 (모 재직증명서)", "3개월 이내 발급, 4대보험 가입 확인"),
		)
	}
	if in.IsSingleParent {
		docs = append(docs, required("priority-single", "한부모가족 증명서", "주민센터/복지로에서 발급 (1순위 입소 대상)"))
	}
	if in.HasDisability {
		docs = append(docs, required("priority-disability", "장애인 등록증 또는 진단서", "아동 또는 보호자 장애 증빙 (1순위 입소 대상)"))
	}
	return docs
}

// typeName is how a facility type reads inside a title: daycare types get
// the 어린이집 suffix, kindergarten types already carry 유치원.
func typeName(t domain.FacilityType) string {
	if t.IsKindergarten() {
		return string(t)
	}
	return string(t) + " 어린이집"
}

// BuildFromProfile builds the document checklist for an application to a
// facility of in.FacilityType. now determines the reference class age.
func BuildFromProfile(in ProfileInput, now time.Time) *Checklist {
	categories := []Category{{Title: CategoryBaseDocs, Items: cloneItems(baseDocs)}}

	if docs := typeDocs[in.FacilityType]; len(docs) > 0 {
		categories = append(categories, Category{
			Title: typeName(in.FacilityType) + " 추가 서류",
			Items: cloneItems(docs),
		})
	}

	if docs := priorityDocs(in); len(docs) > 0 {
		categories = append(categories, Category{Title: CategoryPriority, Items: docs})
	}

	if in.ChildBirthDate != "" {
		info := optional("info-age", "배정 연령반: "+childage.AgeClassLabel(in.ChildBirthDate, now), "3월 1일 기준 만 나이로 산정")
		info.Checked = true
		categories = append(categories, Category{Title: CategoryReference, Items: []Item{info}})
	}

	verb := "입소"
	if in.FacilityType.IsKindergarten() {
		verb = "입학"
	}

	return &Checklist{
		Title:       typeName(in.FacilityType) + " " + verb + " 서류 체크리스트",
		Categories:  categories,
		GeneratedAt: now,
	}
}
