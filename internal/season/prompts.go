package season

import "time"

const maxPrompts = 6

// Prompt is a quick-reply chip: Label is shown, Text is sent.
type Prompt struct {
	Label string `json:"label"`
	Text  string `json:"prompt"`
}

var corePrompts = []Prompt{
	{"유보통합이 뭐야?", "유보통합이 뭐야?"},
	{"우리 동네 추천해줘", "우리 동네 추천해줘"},
	{"시설 비교해줘", "시설 비교해줘"},
}

var seasonalPrompts = map[Season][]Prompt{
	Waiting: {
		{"입소 결과 확인", "입소 결과 발표 일정 알려줘"},
		{"대기 순번 전략", "대기 순번 올리는 방법 알려줘"},
		{"보충 모집 대비", "보충 모집 신청 방법 알려줘"},
	},
	ClassAssignment: {
		{"반편성 대응", "반편성 바뀌었는데 옮기는 게 좋을까?"},
		{"이동 골든타임", "지금 이동하기 좋은 시설 추천해줘"},
		{"전입 절차", "어린이집 전입 절차 알려줘"},
	},
	SecondHalf: {
		{"하반기 빈자리", "하반기 빈자리 많은 시설 찾아줘"},
		{"유치원 전환", "어린이집에서 유치원으로 옮기는 방법"},
		{"이동 후기", "다른 부모님 이동 후기 알려줘"},
	},
	Enrollment: {
		{"입소 신청 준비", "입소 신청 준비 체크리스트 알려줘"},
		{"가산점 전략", "맞벌이 가산점 어떻게 받아?"},
		{"입소 일정", "내년도 입소 신청 일정 알려줘"},
	},
	Default: {
		{"유치원도 찾아줘", "유치원도 찾아줘"},
		{"입소 전략 짜줘", "입소 전략 짜줘"},
		{"입소 체크리스트", "입소 체크리스트 정리해줘"},
	},
}

// Prompts returns the seasonal prompts for m followed by the core prompts,
// without duplicate texts and capped at six.
func Prompts(m time.Month) []Prompt {
	seasonal, ok := seasonalPrompts[ForMonth(m)]
	if !ok {
		seasonal = seasonalPrompts[Default]
	}

	seen := make(map[string]bool, len(seasonal)+len(corePrompts))
	out := make([]Prompt, 0, maxPrompts)
	for _, group := range [][]Prompt{seasonal, corePrompts} {
		for _, p := range group {
			if seen[p.Text] || len(out) == maxPrompts {
				continue
			}
			seen[p.Text] = true
			out = append(out, p)
		}
	}
	return out
}

// QuickReplyLabels is the label of each prompt for m.
func QuickReplyLabels(m time.Month) []string {
	prompts := Prompts(m)
	labels := make([]string, len(prompts))
	for i, p := range prompts {
		labels[i] = p.Label
	}
	return labels
}
