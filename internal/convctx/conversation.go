package convctx

import (
	"slices"

	"github.com/alexanderramin/dotori/internal/contract"
	"github.com/alexanderramin/dotori/internal/domain"
)

// MaxMentionedFacilities is how many facility ids a context remembers.
const MaxMentionedFacilities = 15

// ConversationContext is the short-term memory derived from the visible
// chat history of one request.
type ConversationContext struct {
	PreviousTurns           []contract.Turn     `json:"previousTurns"`
	MentionedFacilityIDs    []string            `json:"mentionedFacilityIds"`
	MentionedFacilityNames  []string            `json:"mentionedFacilityNames"`
	EstablishedRegion       *RegionMatch        `json:"establishedRegion,omitempty"`
	EstablishedFacilityType domain.FacilityType `json:"establishedFacilityType,omitempty"`
}

// ExtractConversationContext walks turns once, oldest first. See
// ExtractConversationContextN.
func ExtractConversationContext(turns []contract.Turn) ConversationContext {
	return ExtractConversationContextN(turns, MaxMentionedFacilities)
}

// ExtractConversationContextN builds a context from turns, keeping at most
// maxIDs facility ids. Region and facility type come from user turns and a
// later mention replaces an earlier one. Facility ids and names come from
// the facility_list, compare and map blocks of assistant turns, in first-seen
// order without duplicates; when there are more than maxIDs ids the oldest
// are dropped.
func ExtractConversationContextN(turns []contract.Turn, maxIDs int) ConversationContext {
	ctx := ConversationContext{
		PreviousTurns:          slices.Clone(turns),
		MentionedFacilityIDs:   []string{},
		MentionedFacilityNames: []string{},
	}
	if ctx.PreviousTurns == nil {
		ctx.PreviousTurns = []contract.Turn{}
	}

	for _, turn := range turns {
		switch turn.Role {
		case contract.RoleUser:
			if region := ExtractRegion(turn.Content); region.Found() {
				ctx.EstablishedRegion = &region
			}
			if t, ok := ExtractFacilityType(turn.Content); ok {
				ctx.EstablishedFacilityType = t
			}
		case contract.RoleAssistant:
			for _, block := range turn.Blocks {
				ctx.collect(block)
			}
		}
	}

	if maxIDs >= 0 && len(ctx.MentionedFacilityIDs) > maxIDs {
		ctx.MentionedFacilityIDs = ctx.MentionedFacilityIDs[len(ctx.MentionedFacilityIDs)-maxIDs:]
	}
	return ctx
}

func (c *ConversationContext) collect(block contract.Block) {
	switch block.Type {
	case contract.BlockFacilityList, contract.BlockCompare:
		for _, f := range block.Facilities {
			c.MentionedFacilityIDs = appendUnique(c.MentionedFacilityIDs, f.ID)
			c.MentionedFacilityNames = appendUnique(c.MentionedFacilityNames, f.Name)
		}
	case contract.BlockMap:
		for _, m := range block.Markers {
			c.MentionedFacilityIDs = appendUnique(c.MentionedFacilityIDs, m.ID)
		}
	}
}

func appendUnique(list []string, v string) []string {
	if v == "" || slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}
