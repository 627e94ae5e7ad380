package intent

// WeightedKeyword is a phrase that adds Weight to an intent's score when it
// appears anywhere in a message.
type WeightedKeyword struct {
	Phrase string
	Weight int
}

var keywords = map[Intent][]WeightedKeyword{
	Recommend: {
		{"추천", 2}, {"찾아", 2}, {"찾기", 2}, {"검색", 2}, {"어떤", 1},
		{"좋은", 2}, {"근처", 1}, {"가까운", 1}, {"동네", 1}, {"우리", 1},
		{"주변", 1}, {"알아보", 1}, {"알려주", 1},
	},
	Compare: {
		{"비교", 2}, {"차이", 2}, {"vs", 2}, {"어디가", 1}, {"뭐가 나아", 2},
		{"더 좋", 1}, {"리포트", 2}, {"다른점", 2},
	},
	Explain: {
		{"뭐야", 2}, {"알려줘", 1}, {"설명", 2}, {"어떻게", 1}, {"뭔가요", 2},
		{"정보", 1}, {"특징", 1}, {"프로그램", 1}, {"평가", 1}, {"장단점", 1},
		{"장점", 1}, {"단점", 1}, {"리뷰", 1}, {"후기", 1}, {"비용", 1},
		{"보육료", 1},
	},
	Status: {
		{"대기", 2}, {"순번", 2}, {"to", 2}, {"빈자리", 1}, {"현황", 1},
		{"신청", 1}, {"상태", 1}, {"언제", 1},
	},
	Checklist: {
		{"준비물", 2}, {"체크리스트", 2}, {"서류", 2}, {"무엇을 준비", 2},
		{"뭐 준비", 2}, {"입소 준비", 2}, {"필요한 것", 2}, {"챙겨야", 2},
		{"필요", 1},
	},
	Knowledge: {
		{"방법", 3}, {"지원금", 2}, {"제도", 2}, {"유보통합", 3}, {"가산점", 2},
		{"아이사랑", 1}, {"포털", 1}, {"기준이", 1}, {"절차", 2}, {"자격", 1},
	},
	Transfer: {
		{"반편성", 3}, {"선생님 바뀌", 3}, {"교사 바뀌", 3}, {"담임 바뀌", 3},
		{"교사 교체", 3}, {"당첨", 4}, {"이동", 2}, {"옮기", 2}, {"옮길", 2},
		{"퇴소", 2}, {"이사", 2}, {"설명회", 2}, {"실망", 1}, {"불만", 1},
	},
}

// deictic phrases point back at something the assistant just showed.
var deictic = []string{"여기", "이거", "이 곳", "이 시설", "이 어린이집", "거기"}

// domainTerms mark an assistant turn as being about a facility.
var domainTerms = []string{"어린이집", "유치원"}

const contextBonus = 2
