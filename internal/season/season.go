// Package season maps calendar months onto the childcare enrollment cycle
// and supplies the briefing and quick-reply prompts that go with each
// period.
package season

import "time"

type Season string

const (
	Waiting         Season = "waiting_season"
	ClassAssignment Season = "class_assignment"
	SecondHalf      Season = "second_half"
	Enrollment      Season = "enrollment_season"
	Default         Season = "default"
)

// ForMonth returns the season a month falls in.
func ForMonth(m time.Month) Season {
	switch {
	case m <= time.February:
		return Waiting
	case m == time.March:
		return ClassAssignment
	case m == time.August:
		return SecondHalf
	case m >= time.October:
		return Enrollment
	default:
		return Default
	}
}

// IsOrientationMonth reports whether facilities hold their new-term
// orientation sessions in m.
func IsOrientationMonth(m time.Month) bool {
	return m == time.February
}

type Action struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Briefing struct {
	Season      Season `json:"id"`
	Eyebrow     string `json:"eyebrow"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      Action `json:"action"`
}

var briefings = map[Season]Briefing{
	Waiting: {
		Season:      Waiting,
		Eyebrow:     "입소 결과 대기",
		Title:       "입소 결과 발표 시기예요",
		Description: "대기 순번 변동이 있을 수 있어요. 알림을 켜두면 바로 알려드릴게요.",
		Action:      Action{Label: "알림 설정", Href: "/my/settings"},
	},
	ClassAssignment: {
		Season:      ClassAssignment,
		Eyebrow:     "반편성 시즌",
		Title:       "반편성 결과가 나왔어요",
		Description: "마음에 안 드신다면 지금이 이동 골든타임! 빈자리 있는 시설을 확인해보세요.",
		Action:      Action{Label: "빈자리 탐색", Href: "/explore"},
	},
	SecondHalf: {
		Season:      SecondHalf,
		Eyebrow:     "하반기 이동",
		Title:       "하반기 이동 골든타임이에요",
		Description: "8월은 연중 이동이 가장 많은 달! 빈자리를 놓치지 마세요.",
		Action:      Action{Label: "시설 탐색", Href: "/explore"},
	},
	Enrollment: {
		Season:      Enrollment,
		Eyebrow:     "내년도 입소 신청",
		Title:       "내년 3월 입소 신청 시즌이에요",
		Description: "아이사랑에서 입소 신청을 준비하세요. 도토리가 입소 전략을 도와드릴게요.",
		Action:      Action{Label: "입소 전략 보기", Href: "/chat?prompt=입소전략"},
	},
	Default: {
		Season:      Default,
		Eyebrow:     "빈자리 탐색",
		Title:       "우리 아이에게 딱 맞는 시설을 찾아보세요",
		Description: "관심 시설에 빈자리가 나면 바로 알려드려요.",
		Action:      Action{Label: "시설 탐색", Href: "/explore"},
	},
}

// Briefing returns the dashboard briefing for s.
func (s Season) Briefing() Briefing {
	if b, ok := briefings[s]; ok {
		return b
	}
	return briefings[Default]
}

// BriefingFor is the briefing for the season containing t.
func BriefingFor(t time.Time) Briefing {
	return ForMonth(t.Month()).Briefing()
}
