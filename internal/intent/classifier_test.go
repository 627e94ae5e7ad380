package intent

import (
	"testing"

	"github.com/alexanderramin/dotori/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"반편성 때문에 너무 힘들어", Transfer},
		{"선생님 바뀌었어", Transfer},
		{"이동 가능한 곳이 있을까?", Transfer},
		{"국공립 대기 당첨이 떴어", Transfer},
		{"어린이집 추천해줘", Recommend},
		{"강남구 국공립 추천해줘", Recommend},
		{"우리 동네 근처 좋은 어린이집 알려줘", Recommend},
		{"여기보다 나은 곳 추천해줘", Recommend},
		{"A vs B 비교", Compare},
		{"A VS B 어디가 좋아?", Compare},
		{"A와 B 중 어떤 게 나을까 비교해줘", Compare},
		{"두 곳 비교해줘", Compare},
		{"두 곳 차이점이 뭐가 나아?", Compare},
		{"이 어린이집 뭐야?", Explain},
		{"입소 대기 순번이 어떻게 되지?", Status},
		{"입소 대기 현황 알려줘", Status},
		{"강남구 국공립 빈자리 있어요?", Status},
		{"입소 준비물 체크리스트", Checklist},
		{"서류 뭐 준비해야 해?", Checklist},
		{"입소 서류 어떻게 준비하나요?", Checklist},
		{"국공립 대기 신청 방법 알려줘", Knowledge},
		{"아이사랑포털에서 지원금 받는 방법", Knowledge},
		{"안녕하세요", General},
		{"고마워", General},
	}
	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.message, nil))
		})
	}
}

func TestClassify_DegenerateInputIsGeneral(t *testing.T) {
	for _, msg := range []string{"", "   ", "🧸🎈😊", "?!.,"} {
		assert.Equal(t, General, Classify(msg, nil), "message %q", msg)
	}
}

func TestClassify_AdversarialInputDoesNotPanic(t *testing.T) {
	msgs := []string{
		"<script>alert('x')</script>",
		"'; DROP TABLE facilities; --",
		"\x00\x01\x02",
	}
	for _, msg := range msgs {
		assert.NotPanics(t, func() { Classify(msg, nil) })
	}
}

func TestClassify_TieBreaks(t *testing.T) {
	// checklist 3 (서류, 필요) vs knowledge 3 (방법)
	assert.Equal(t, Checklist, Classify("국공립 신청 방법이랑 서류 뭐가 필요해?", nil))
	// transfer 4 (당첨) vs status 4 (대기, 빈자리, 현황)
	assert.Equal(t, Transfer, Classify("국공립 대기 당첨됐는데 빈자리 현황도 궁금해요", nil))
	// knowledge 3 (방법) vs status 3 (대기, 신청)
	assert.Equal(t, Knowledge, Classify("대기 신청 방법", nil))
}

func TestClassify_LongRecommendation(t *testing.T) {
	msg := "아이가 적응을 힘들어해서 교사 안정성과 통원 거리, 프로그램 균형, 급식 만족도까지 " +
		"길게 비교해보고 싶고 우리 동네 기준으로 추천 가능한 어린이집을 자세히 알려주세요."
	assert.Equal(t, Recommend, Classify(msg, nil))
}

func TestClassify_DeicticContextBonus(t *testing.T) {
	history := []contract.Turn{
		{Role: contract.RoleUser, Content: "강남 어린이집 찾아줘"},
		{Role: contract.RoleAssistant, Content: "서울 강남구 어린이집 3곳을 찾았어요!"},
	}
	assert.Equal(t, Explain, Classify("여기 어떤 곳이야?", history))
	assert.Equal(t, Recommend, Classify("여기 어떤 곳이야?", nil))
}

func TestClassify_BonusNeedsFacilityMentionInLastAssistantTurn(t *testing.T) {
	history := []contract.Turn{
		{Role: contract.RoleAssistant, Content: "강남구 어린이집 3곳이에요"},
		{Role: contract.RoleAssistant, Content: "다른 궁금한 점이 있으세요?"},
	}
	assert.Equal(t, Recommend, Classify("여기 어떤 곳이야?", history))
}

func TestClassify_Deterministic(t *testing.T) {
	msg := "반편성도 맘에 안 들고 국공립 빈자리도 보고 싶어요"
	first := Classify(msg, nil)
	for range 20 {
		assert.Equal(t, first, Classify(msg, nil))
	}
	assert.Equal(t, Transfer, first)
}

func TestScores_CaseInsensitive(t *testing.T) {
	lower := Scores("a vs b", nil)
	upper := Scores("A VS B", nil)
	assert.Equal(t, lower[Compare], upper[Compare])
	assert.Equal(t, 2, upper[Compare])
}

func TestAll_EndsWithGeneral(t *testing.T) {
	all := All()
	assert.Len(t, all, 8)
	assert.Equal(t, General, all[len(all)-1])
}
