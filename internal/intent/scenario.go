package intent

import "strings"

// Scenario is the concrete situation behind a transfer request.
type Scenario string

const (
	ScenarioClassAssignment Scenario = "반편성"
	ScenarioTeacherChange   Scenario = "교사교체"
	ScenarioOrientation     Scenario = "설명회실망"
	ScenarioPublicWon       Scenario = "국공립당첨"
	ScenarioRelocation      Scenario = "이사예정"
	ScenarioGeneral         Scenario = "일반"
)

var scenarioSignals = []struct {
	scenario Scenario
	phrases  []string
}{
	{ScenarioClassAssignment, []string{"반편성", "반 배정", "같은 반", "친한 친구"}},
	{ScenarioTeacherChange, []string{"선생님 바뀌", "교사 교체", "담임 바뀌"}},
	{ScenarioOrientation, []string{"설명회", "원장 태도", "시설이 낡"}},
	{ScenarioPublicWon, []string{"국공립 당첨", "대기 당첨", "연락 왔"}},
	{ScenarioRelocation, []string{"이사", "통원 거리"}},
}

var empathy = map[Scenario]string{
	ScenarioClassAssignment: "반편성 결과가 실망스러우셨군요. 이동 골든타임은 3월 초예요.",
	ScenarioTeacherChange:   "교사 교체 후 불안한 마음이 드실 수 있어요.",
	ScenarioOrientation:     "설명회에서 기대와 다르게 느껴져 많이 실망스러우셨겠어요. 지금 상황을 차분히 정리해봐요.",
	ScenarioPublicWon:       "국공립 당첨 축하해요! 현재 시설과 비교해볼게요.",
	ScenarioRelocation:      "이사 예정이라 생활권 변화가 커서 걱정이 클 거예요. 이동 준비를 같이 정리해드릴게요.",
	ScenarioGeneral:         "어린이집 이동 고민이 크시겠어요. 이동 이유를 먼저 파악하고 지역과 시기까지 같이 확인해 다음 단계를 잡아드릴게요.",
}

// DetectTransferScenario returns the first scenario whose signal phrase
// appears in message, or ScenarioGeneral.
func DetectTransferScenario(message string) Scenario {
	text := strings.ToLower(message)
	for _, s := range scenarioSignals {
		if containsAny(text, s.phrases) {
			return s.scenario
		}
	}
	return ScenarioGeneral
}

// Empathy is the opening line used when replying in this scenario.
func (s Scenario) Empathy() string {
	if line, ok := empathy[s]; ok {
		return line
	}
	return empathy[ScenarioGeneral]
}
