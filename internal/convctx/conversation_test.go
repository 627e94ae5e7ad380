package convctx

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/dotori/internal/contract"
	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facilityList(ids ...string) contract.Block {
	b := contract.Block{Type: contract.BlockFacilityList}
	for _, id := range ids {
		b.Facilities = append(b.Facilities, domain.Facility{ID: id, Name: "시설 " + id})
	}
	return b
}

func TestExtractConversationContext_Empty(t *testing.T) {
	ctx := ExtractConversationContext(nil)
	assert.NotNil(t, ctx.MentionedFacilityIDs)
	assert.NotNil(t, ctx.MentionedFacilityNames)
	assert.NotNil(t, ctx.PreviousTurns)
	assert.Empty(t, ctx.MentionedFacilityIDs)
	assert.Nil(t, ctx.EstablishedRegion)
	assert.Empty(t, ctx.EstablishedFacilityType)
}

func TestExtractConversationContext_LastMentionWins(t *testing.T) {
	turns := []contract.Turn{
		{Role: contract.RoleUser, Content: "강남 국공립 찾아줘"},
		{Role: contract.RoleAssistant, Content: "강남구 국공립 어린이집이에요"},
		{Role: contract.RoleUser, Content: "송파 민간은 어때?"},
		{Role: contract.RoleUser, Content: "고마워"},
	}
	ctx := ExtractConversationContext(turns)
	require.NotNil(t, ctx.EstablishedRegion)
	assert.Equal(t, "송파구", ctx.EstablishedRegion.District)
	assert.Equal(t, domain.TypePrivate, ctx.EstablishedFacilityType)
	assert.Len(t, ctx.PreviousTurns, 4)
}

func TestExtractConversationContext_IgnoresAssistantText(t *testing.T) {
	turns := []contract.Turn{
		{Role: contract.RoleAssistant, Content: "마포구 가정어린이집을 찾았어요"},
	}
	ctx := ExtractConversationContext(turns)
	assert.Nil(t, ctx.EstablishedRegion)
	assert.Empty(t, ctx.EstablishedFacilityType)
}

func TestExtractConversationContext_CollectsBlocks(t *testing.T) {
	turns := []contract.Turn{
		{Role: contract.RoleAssistant, Blocks: []contract.Block{
			facilityList("a", "b"),
			{Type: contract.BlockMap, Markers: []contract.MapMarker{{ID: "b"}, {ID: "c"}}},
			{Type: contract.BlockCompare, Facilities: []domain.Facility{{ID: "a", Name: "시설 a"}, {ID: "d", Name: "시설 d"}}},
			{Type: contract.BlockText, Content: "e"},
		}},
		// blocks on user turns are not facility references
		{Role: contract.RoleUser, Blocks: []contract.Block{facilityList("z")}},
	}
	ctx := ExtractConversationContext(turns)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ctx.MentionedFacilityIDs)
	assert.Equal(t, []string{"시설 a", "시설 b", "시설 d"}, ctx.MentionedFacilityNames)
}

func TestExtractConversationContext_KeepsMostRecentIDs(t *testing.T) {
	var turns []contract.Turn
	for i := range 20 {
		turns = append(turns, contract.Turn{
			Role:   contract.RoleAssistant,
			Blocks: []contract.Block{facilityList(fmt.Sprintf("f%02d", i))},
		})
	}
	ctx := ExtractConversationContext(turns)
	require.Len(t, ctx.MentionedFacilityIDs, MaxMentionedFacilities)
	assert.Equal(t, "f05", ctx.MentionedFacilityIDs[0])
	assert.Equal(t, "f19", ctx.MentionedFacilityIDs[14])
	assert.Len(t, ctx.MentionedFacilityNames, 20)
}

func TestExtractConversationContextN_CustomLimit(t *testing.T) {
	turns := []contract.Turn{{Role: contract.RoleAssistant, Blocks: []contract.Block{facilityList("a", "b", "c")}}}
	ctx := ExtractConversationContextN(turns, 2)
	assert.Equal(t, []string{"b", "c"}, ctx.MentionedFacilityIDs)
}

func TestExtractConversationContext_DoesNotAliasInput(t *testing.T) {
	turns := []contract.Turn{{Role: contract.RoleUser, Content: "강남"}}
	ctx := ExtractConversationContext(turns)
	turns[0].Content = "changed"
	assert.Equal(t, "강남", ctx.PreviousTurns[0].Content)
}
