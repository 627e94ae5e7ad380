package nba

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/dotori/internal/childage"
	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/alexanderramin/dotori/internal/season"
)

// Rules returns the rule table in declaration order. Declaration order
// breaks priority ties.
func Rules() []Rule {
	return []Rule{
		{ID: "onboarding_incomplete", Priority: 100, Condition: needsOnboarding, Generate: onboardingItem},
		{ID: "vacancy_alert", Priority: 95, Condition: hasVacancy, Generate: vacancyItem},
		{ID: "class_assignment_season", Priority: 90, Condition: inClassAssignment, Generate: classAssignmentItem},
		{ID: "waitlist_position", Priority: 88, Condition: hasWaitlistPosition, Generate: waitlistItem},
		{ID: "enrollment_season", Priority: 85, Condition: inEnrollmentWindow, Generate: enrollmentItem},
		{ID: "orientation_season", Priority: 85, Condition: inOrientation, Generate: orientationItem},
		{ID: "waiting_season", Priority: 82, Condition: waitingForResults, Generate: waitingItem},
		{ID: "enrollment_start", Priority: 80, Condition: termStarted, Generate: termStartItem},
		{ID: "age_based_recommend", Priority: 75, Condition: wantsAgeSuggestion, Generate: ageItem},
		{ID: "no_interests", Priority: 70, Condition: hasNoInterests, Generate: noInterestsItem},
		{ID: "no_alerts", Priority: 60, Condition: hasNoAlerts, Generate: noAlertsItem},
		{ID: "weekly_report", Priority: 30, Condition: Context.onboarded, Generate: weeklyItem},
	}
}

func needsOnboarding(c Context) bool {
	return c.User != nil && !c.User.OnboardingCompleted
}

func onboardingItem(Context) Item {
	return Item{
		ID:          "onboarding_incomplete",
		Title:       "프로필을 완성해보세요",
		Description: "아이 정보를 등록하면 맞춤 입소 전략을 받을 수 있어요",
		Action:      &Action{Label: "등록하기", Target: "/onboarding"},
		Priority:    100,
	}
}

func firstAvailable(facilities []domain.Facility) *domain.Facility {
	for i := range facilities {
		if facilities[i].Status == domain.StatusAvailable {
			return &facilities[i]
		}
	}
	return nil
}

func hasVacancy(c Context) bool {
	return firstAvailable(c.InterestFacilities) != nil
}

func vacancyItem(c Context) Item {
	f := firstAvailable(c.InterestFacilities)
	if f == nil {
		return Item{
			ID:          "vacancy_generic",
			Title:       "관심 시설에 빈자리가 있어요!",
			Description: "지금 바로 확인하고 신청하세요",
			Action:      &Action{Label: "확인하기", Target: "/my/interests"},
			Priority:    95,
		}
	}
	return Item{
		ID:          "vacancy_" + f.ID,
		Title:       f.Name + "에 빈자리가 생겼어요!",
		Description: childSubject(c.User) + " 갈 수 있는 자리가 생겼어요. 서둘러 확인하세요",
		Action:      &Action{Label: "바로 확인", Target: "/facility/" + f.ID},
		Priority:    95,
	}
}

func hasWaitlistPosition(c Context) bool {
	return c.WaitlistCount > 0 && c.BestWaitlistPosition != nil
}

func waitlistItem(c Context) Item {
	pos := *c.BestWaitlistPosition
	name := domain.CoalesceStr(c.WaitlistFacilityName, "시설")

	title := "대기 현황을 확인하세요"
	var msg string
	switch {
	case pos <= 3:
		title = fmt.Sprintf("대기 순번 %d번째 — 거의 다 왔어요!", pos)
		msg = "곧 입소 연락이 올 수 있어요! 미리 서류를 준비하세요"
	case pos <= 10:
		msg = "대기 순번이 가까워지고 있어요. 입소 의향을 다시 확인해두세요"
	default:
		msg = "대기 중인 시설 현황을 정기적으로 확인해보세요"
	}
	return Item{
		ID:          "waitlist_position",
		Title:       title,
		Description: name + " " + msg,
		Action:      &Action{Label: "대기 현황", Target: "/my/waitlist"},
		Priority:    88,
	}
}

func inClassAssignment(c Context) bool {
	return season.ForMonth(c.Now.Month()) == season.ClassAssignment
}

func classAssignmentItem(Context) Item {
	return Item{
		ID:          "class_assignment_season",
		Title:       "반편성 결과 발표 시즌이에요",
		Description: "마음에 안 드신다면 지금이 이동 골든타임! 빈자리 있는 시설을 바로 확인해보세요.",
		Action:      &Action{Label: "빈자리 탐색", Target: "/explore"},
		Priority:    90,
	}
}

func nextMarch(now time.Time) time.Time {
	return time.Date(now.Year()+1, time.March, 1, 0, 0, 0, 0, now.Location())
}

func inEnrollmentWindow(c Context) bool {
	if !c.onboarded() || season.ForMonth(c.Now.Month()) != season.Enrollment {
		return false
	}
	child := childage.Youngest(c.User.Children)
	if child == nil {
		return false
	}
	months := childage.MonthsOld(child.BirthDate, nextMarch(c.Now))
	return months >= 0 && months < 72
}

func enrollmentItem(c Context) Item {
	nextYear := c.Now.Year() + 1
	child := childage.Youngest(c.User.Children)
	class := childage.ClassAge(child.BirthDate, nextYear)
	return Item{
		ID:          "enrollment_season",
		Title:       fmt.Sprintf("%d년 3월 입소 신청 시즌이에요", nextYear),
		Description: fmt.Sprintf("%s은(는) %s 대상이에요. 아이사랑에서 입소 신청을 준비하세요", childLabel(c.User), class.Name),
		Action:      &Action{Label: "입소 전략 보기", Target: "/chat?prompt=입소전략"},
		Priority:    85,
	}
}

func inOrientation(c Context) bool {
	return season.IsOrientationMonth(c.Now.Month())
}

func orientationItem(Context) Item {
	return Item{
		ID:          "orientation_season",
		Title:       "설명회 다녀오셨나요?",
		Description: "기대와 달랐다면 지금 다른 시설도 살펴보세요. 2월이 연중 이동이 가장 많은 달이에요.",
		Action:      &Action{Label: "시설 탐색", Target: "/explore"},
		Priority:    85,
	}
}

func waitingForResults(c Context) bool {
	return c.onboarded() && season.ForMonth(c.Now.Month()) == season.Waiting && c.WaitlistCount > 0
}

func waitingItem(Context) Item {
	return Item{
		ID:          "waiting_season",
		Title:       "입소 결과 발표 시기예요",
		Description: "대기 순번 변동이 있을 수 있어요. 알림을 켜두면 바로 알려드릴게요",
		Action:      &Action{Label: "알림 설정", Target: "/my/settings"},
		Priority:    82,
	}
}

func termStarted(c Context) bool {
	return c.onboarded() && c.Now.Month() == time.March && c.WaitlistCount > 0
}

func termStartItem(Context) Item {
	return Item{
		ID:          "enrollment_start",
		Title:       "3월 신학기가 시작되었어요",
		Description: "입소 확정 여부를 확인하고, TO가 생기면 바로 알려드릴게요",
		Action:      &Action{Label: "대기 현황", Target: "/my/waitlist"},
		Priority:    80,
	}
}

// maxInterestsForAgeSuggestion suppresses the suggestion once a parent is
// already tracking several facilities.
const maxInterestsForAgeSuggestion = 2

func wantsAgeSuggestion(c Context) bool {
	if !c.onboarded() || len(c.InterestFacilities) > maxInterestsForAgeSuggestion {
		return false
	}
	child := childage.Youngest(c.User.Children)
	return child != nil && childage.MonthsOld(child.BirthDate, c.Now) >= 0
}

func ageItem(c Context) Item {
	child := childage.Youngest(c.User.Children)
	months := childage.MonthsOld(child.BirthDate, c.Now)

	var suggestion, prompt string
	switch {
	case months < 12:
		suggestion, prompt = "영아 전문 가정어린이집이나 국공립을 추천해요", "영아 가정어린이집 추천"
	case months < 24:
		suggestion, prompt = "1세반 정원이 넉넉한 시설을 찾아볼까요?", "1세반 추천"
	case months < 36:
		suggestion, prompt = "2세반은 경쟁이 치열해요. 미리 대기 신청을 권해요", "2세반 대기전략"
	default:
		suggestion, prompt = "유아반은 선택지가 넓어요. 프로그램 비교를 추천해요", "유아반 프로그램 비교"
	}
	return Item{
		ID:          "age_based_recommend",
		Title:       fmt.Sprintf("%s (%s) 맞춤 추천", childLabel(c.User), childage.FormatAge(months)),
		Description: suggestion,
		Action:      &Action{Label: "토리에게 물어보기", Target: "/chat?prompt=" + url.PathEscape(prompt)},
		Priority:    75,
	}
}

func hasNoInterests(c Context) bool {
	return c.onboarded() && len(c.InterestFacilities) == 0
}

func noInterestsItem(c Context) Item {
	region := domain.CoalesceStr(c.User.Region.Sigungu, "우리 동네")
	desc := region + " 어린이집을 탐색하고 관심 등록하세요"
	if len(c.User.Children) > 0 {
		desc = fmt.Sprintf("%s에서 %s에게 맞는 어린이집을 찾아보세요", region, childLabel(c.User))
	}
	return Item{
		ID:          "no_interests",
		Title:       "관심 시설을 등록해보세요",
		Description: desc,
		Action:      &Action{Label: "탐색하기", Target: "/explore"},
		Priority:    70,
	}
}

func hasNoAlerts(c Context) bool {
	return c.onboarded() && len(c.InterestFacilities) > 0 && c.AlertCount == 0
}

func noAlertsItem(Context) Item {
	return Item{
		ID:          "no_alerts",
		Title:       "알림을 설정해보세요",
		Description: "빈자리가 생기면 바로 알려드려요",
		Action:      &Action{Label: "설정하기", Target: "/my/settings"},
		Priority:    60,
	}
}

func weeklyItem(c Context) Item {
	title := "이번 주 어린이집 현황"
	if region := c.User.Region.Sigungu; region != "" {
		title = region + " " + title
	}
	return Item{
		ID:          "weekly_report",
		Title:       title,
		Description: "토리에게 이번 주 변동 사항을 물어보세요",
		Action:      &Action{Label: "물어보기", Target: "/chat"},
		Priority:    30,
	}
}

const anonymousChild = "자녀"

// childLabel names the first child by list order, marking the label when
// the family has more than one child.
func childLabel(u *domain.User) string {
	first := u.PrimaryChild()
	if first == nil {
		return anonymousChild
	}
	name := domain.CoalesceStr(strings.TrimSpace(first.Name), anonymousChild)
	if len(u.Children) > 1 {
		name += "(첫째 기준)"
	}
	return name
}

func childSubject(u *domain.User) string {
	name := childLabel(u)
	if strings.HasPrefix(name, anonymousChild) {
		return name + "가"
	}
	return name + "이(가)"
}
