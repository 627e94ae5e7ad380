package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/dotori/internal/convctx"
	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/alexanderramin/dotori/internal/intent"
	"github.com/alexanderramin/dotori/internal/nba"
	"github.com/alexanderramin/dotori/internal/service"
)

// FormatAnalysis renders the classification of one message.
func FormatAnalysis(a *service.Analysis) string {
	var b strings.Builder

	pairs := [][2]string{{"의도", StyleAcorn.Render(string(a.Intent))}}
	if a.Scenario != "" {
		pairs = append(pairs, [2]string{"상황", string(a.Scenario)})
	}
	if a.Region.Found() {
		pairs = append(pairs, [2]string{"지역", regionText(a.Region)})
	}
	if a.FacilityType != "" {
		pairs = append(pairs, [2]string{"유형", string(a.FacilityType)})
	}
	pairs = append(pairs, [2]string{"점수", scoresText(a.Scores)})
	b.WriteString(KeyValue(pairs))

	if a.Empathy != "" {
		b.WriteString("\n")
		b.WriteString(StyleFg.Render(a.Empathy))
		b.WriteString("\n")
	}
	return b.String()
}

// scoresText lists non-zero scores, highest first, ties in tie order.
func scoresText(scores map[intent.Intent]int) string {
	order := intent.All()
	rank := make(map[intent.Intent]int, len(order))
	for i, in := range order {
		rank[in] = i
	}

	var hits []intent.Intent
	for in, s := range scores {
		if s > 0 {
			hits = append(hits, in)
		}
	}
	if len(hits) == 0 {
		return Dim("-")
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if scores[hits[i]] != scores[hits[j]] {
			return scores[hits[i]] > scores[hits[j]]
		}
		return rank[hits[i]] < rank[hits[j]]
	})

	parts := make([]string, len(hits))
	for i, in := range hits {
		parts[i] = fmt.Sprintf("%s=%d", in, scores[in])
	}
	return strings.Join(parts, " ")
}

func regionText(r convctx.RegionMatch) string {
	name := strings.TrimSpace(r.Province + " " + r.District)
	return fmt.Sprintf("%s %s", name, Dim(fmt.Sprintf("(%.2f)", r.Confidence)))
}

// FormatRegion renders what a message says about place and facility type.
func FormatRegion(r convctx.RegionMatch, t domain.FacilityType, query string) string {
	region := Dim("-")
	if r.Found() {
		region = regionText(r)
	}
	return KeyValue([][2]string{
		{"지역", region},
		{"유형", OrDash(string(t))},
		{"검색어", OrDash(query)},
	})
}

// FormatConversationContext renders the memory extracted from a history.
func FormatConversationContext(c convctx.ConversationContext) string {
	region := Dim("-")
	if c.EstablishedRegion != nil {
		region = regionText(*c.EstablishedRegion)
	}
	var b strings.Builder
	b.WriteString(KeyValue([][2]string{
		{"대화 수", strconv.Itoa(len(c.PreviousTurns))},
		{"지역", region},
		{"유형", OrDash(string(c.EstablishedFacilityType))},
	}))

	if len(c.MentionedFacilityNames) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("언급된 시설"))
		b.WriteString("\n")
		for i, name := range c.MentionedFacilityNames {
			id := ""
			if i < len(c.MentionedFacilityIDs) {
				id = c.MentionedFacilityIDs[i]
			}
			b.WriteString(Bullet(name + " " + Dim(id)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// AgeView is the age breakdown shown by the age command.
type AgeView struct {
	BirthDate  string `json:"birthDate"`
	On         string `json:"on"`
	Months     int    `json:"months"`
	Age        string `json:"age"`
	ClassAge   int    `json:"classAge"`
	ClassName  string `json:"className"`
	ClassLabel string `json:"classLabel"`
}

// FormatAge renders an AgeView.
func FormatAge(v AgeView) string {
	return KeyValue([][2]string{
		{"생년월일", v.BirthDate},
		{"기준일", v.On},
		{"월령", fmt.Sprintf("%d개월 (%s)", v.Months, v.Age)},
		{"반", fmt.Sprintf("%s %s", v.ClassName, Dim(fmt.Sprintf("만 %d세", v.ClassAge)))},
		{"배정", v.ClassLabel},
	})
}

// FormatActions renders next best actions as numbered cards.
func FormatActions(items []nba.Item) string {
	if len(items) == 0 {
		return Dim("추천할 다음 행동이 없어요.") + "\n"
	}
	var b strings.Builder
	for i, it := range items {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleAcorn.Render(fmt.Sprintf("%d.", i+1)),
			Bold(it.Title),
			Dim(fmt.Sprintf("[%s · %d]", it.ID, it.Priority)),
		))
		b.WriteString("   " + it.Description + "\n")
		if it.Action != nil {
			b.WriteString("   " + StyleBlue.Render("→ "+it.Action.Label) + " " + Dim(it.Action.Target) + "\n")
		}
	}
	return b.String()
}
