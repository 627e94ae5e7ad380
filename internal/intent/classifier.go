// Package intent classifies a parent's chat message into one of a closed
// set of intents using weighted keyword scoring.
package intent

import (
	"strings"

	"github.com/alexanderramin/dotori/internal/contract"
)

type Intent string

const (
	Recommend Intent = "recommend"
	Compare   Intent = "compare"
	Explain   Intent = "explain"
	Status    Intent = "status"
	Checklist Intent = "checklist"
	Knowledge Intent = "knowledge"
	Transfer  Intent = "transfer"
	General   Intent = "general"
)

// tieOrder lists intents from highest to lowest tie-break priority.
var tieOrder = []Intent{Checklist, Compare, Transfer, Knowledge, Status, Explain, Recommend}

// All returns every intent, General last.
func All() []Intent {
	out := make([]Intent, 0, len(tieOrder)+1)
	out = append(out, tieOrder...)
	return append(out, General)
}

// Scores returns the raw keyword score of every non-general intent for
// message, including the context bonus derived from history.
func Scores(message string, history []contract.Turn) map[Intent]int {
	text := strings.ToLower(message)
	scores := make(map[Intent]int, len(tieOrder))
	for _, in := range tieOrder {
		for _, kw := range keywords[in] {
			if strings.Contains(text, strings.ToLower(kw.Phrase)) {
				scores[in] += kw.Weight
			}
		}
	}
	if refersToLastFacility(text, history) {
		scores[Explain] += contextBonus
	}
	return scores
}

// Classify returns the highest-scoring intent for message. Ties go to the
// intent earlier in the tie order; a message with no matching phrase is
// General.
func Classify(message string, history []contract.Turn) Intent {
	scores := Scores(message, history)
	best, bestScore := General, 0
	for _, in := range tieOrder {
		if scores[in] > bestScore {
			best, bestScore = in, scores[in]
		}
	}
	return best
}

func refersToLastFacility(text string, history []contract.Turn) bool {
	last := lastAssistantTurn(history)
	if last == nil || !containsAny(last.Content, domainTerms) {
		return false
	}
	return containsAny(text, deictic)
}

func lastAssistantTurn(history []contract.Turn) *contract.Turn {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == contract.RoleAssistant {
			return &history[i]
		}
	}
	return nil
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
