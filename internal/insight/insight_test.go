package insight

import (
	"testing"
	"time"

	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func makeFacility(opts ...func(*domain.Facility)) *domain.Facility {
	f := &domain.Facility{
		ID:          "f1",
		Name:        "테스트어린이집",
		Type:        domain.TypePublic,
		Status:      domain.StatusAvailable,
		Address:     "서울시 강남구",
		Capacity:    domain.Capacity{Total: 30, Current: 25},
		Features:    []string{},
		Rating:      4.2,
		ReviewCount: 12,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func withCapacity(total, current, waiting int) func(*domain.Facility) {
	return func(f *domain.Facility) { f.Capacity = domain.Capacity{Total: total, Current: current, Waiting: waiting} }
}

func withStatus(s domain.FacilityStatus) func(*domain.Facility) {
	return func(f *domain.Facility) { f.Status = s }
}

func withType(t domain.FacilityType) func(*domain.Facility) {
	return func(f *domain.Facility) { f.Type = t }
}

func withFeatures(tags ...string) func(*domain.Facility) {
	return func(f *domain.Facility) { f.Features = tags }
}

func withRating(r float64, reviews int) func(*domain.Facility) {
	return func(f *domain.Facility) { f.Rating, f.ReviewCount = r, reviews }
}

func withGrade(g string) func(*domain.Facility) {
	return func(f *domain.Facility) { f.EvaluationGrade = g }
}

func bySource(insights []Insight, source string) *Insight {
	for i := range insights {
		if insights[i].Source == source {
			return &insights[i]
		}
	}
	return nil
}

func TestBuildInsights_Vacancy(t *testing.T) {
	tests := []struct {
		name      string
		facility  *domain.Facility
		source    string
		sentiment domain.Sentiment
		contains  []string
	}{
		{"open seats", makeFacility(), SourceCapacity, domain.SentimentPositive, []string{"5자리", "30명 중 25명"}},
		{"waiting", makeFacility(withStatus(domain.StatusWaiting), withCapacity(30, 30, 7)), SourceWaitlist, domain.SentimentCaution, []string{"7명"}},
		{"full", makeFacility(withStatus(domain.StatusFull), withCapacity(30, 30, 0)), SourceCapacity, domain.SentimentCaution, []string{"가득"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bySource(BuildInsights(tt.facility, nil, testNow), tt.source)
			require.NotNil(t, got)
			assert.Equal(t, tt.sentiment, got.Sentiment)
			for _, s := range tt.contains {
				assert.Contains(t, got.Text, s)
			}
		})
	}
}

func TestBuildInsights_AvailableWithoutSeats(t *testing.T) {
	insights := BuildInsights(makeFacility(withCapacity(30, 30, 0)), nil, testNow)
	assert.Nil(t, bySource(insights, SourceCapacity))
	assert.Nil(t, bySource(insights, SourceWaitlist))
}

func TestBuildInsights_Scale(t *testing.T) {
	big := bySource(BuildInsights(makeFacility(withCapacity(120, 100, 0)), nil, testNow), SourceScale)
	require.NotNil(t, big)
	assert.Equal(t, domain.SentimentPositive, big.Sentiment)
	assert.Contains(t, big.Text, "대형")

	small := bySource(BuildInsights(makeFacility(withCapacity(15, 10, 0)), nil, testNow), SourceScale)
	require.NotNil(t, small)
	assert.Equal(t, domain.SentimentNeutral, small.Sentiment)

	assert.Nil(t, bySource(BuildInsights(makeFacility(withCapacity(50, 30, 0)), nil, testNow), SourceScale))
}

func TestBuildInsights_TypeCommentary(t *testing.T) {
	public := bySource(BuildInsights(makeFacility(), nil, testNow), SourceTypeStats)
	require.NotNil(t, public)
	assert.Contains(t, public.Text, "보육료")

	home := bySource(BuildInsights(makeFacility(withType(domain.TypeHome)), nil, testNow), SourceTypeInfo)
	require.NotNil(t, home)
	assert.Contains(t, home.Text, "가정어린이집")

	for _, typ := range []domain.FacilityType{domain.TypeCooperative, domain.TypeWelfare} {
		insights := BuildInsights(makeFacility(withType(typ)), nil, testNow)
		assert.Nil(t, bySource(insights, SourceTypeStats), typ)
		assert.Nil(t, bySource(insights, SourceTypeInfo), typ)
	}
}

func TestBuildInsights_Grade(t *testing.T) {
	tests := []struct {
		grade string
		want  domain.Sentiment
	}{
		{"A", domain.SentimentPositive},
		{"B", domain.SentimentPositive},
		{"C", domain.SentimentNeutral},
		{"D", domain.SentimentCaution},
	}
	for _, tt := range tests {
		got := bySource(BuildInsights(makeFacility(withGrade(tt.grade)), nil, testNow), SourceEvaluation)
		require.NotNil(t, got, tt.grade)
		assert.Equal(t, tt.want, got.Sentiment)
		assert.Contains(t, got.Text, tt.grade+"등급")
	}

	assert.Nil(t, bySource(BuildInsights(makeFacility(), nil, testNow), SourceEvaluation))
	assert.Nil(t, bySource(BuildInsights(makeFacility(withGrade("E")), nil, testNow), SourceEvaluation))
}

func TestBuildInsights_ExtendedCare(t *testing.T) {
	f := makeFacility()
	f.OperatingHours = &domain.OperatingHours{Open: "07:30", Close: "19:30", ExtendedCare: true}
	got := bySource(BuildInsights(f, nil, testNow), SourceOperation)
	require.NotNil(t, got)
	assert.Contains(t, got.Text, "19:30")

	f.OperatingHours.ExtendedCare = false
	assert.Nil(t, bySource(BuildInsights(f, nil, testNow), SourceOperation))
}

func TestBuildInsights_Rating(t *testing.T) {
	high := bySource(BuildInsights(makeFacility(withRating(4.8, 10)), nil, testNow), SourceReviews)
	require.NotNil(t, high)
	assert.Equal(t, domain.SentimentPositive, high.Sentiment)
	assert.Contains(t, high.Text, "4.8")
	assert.Contains(t, high.Text, "10개")

	low := bySource(BuildInsights(makeFacility(withRating(2.5, 5)), nil, testNow), SourceReviews)
	require.NotNil(t, low)
	assert.Equal(t, domain.SentimentCaution, low.Sentiment)

	assert.Nil(t, bySource(BuildInsights(makeFacility(withRating(4.5, 3)), nil, testNow), SourceReviews))
	assert.Nil(t, bySource(BuildInsights(makeFacility(withRating(3.8, 20)), nil, testNow), SourceReviews))
}

func TestBuildInsights_Competition(t *testing.T) {
	popular := bySource(BuildInsights(makeFacility(withStatus(domain.StatusWaiting), withCapacity(100, 96, 15)), nil, testNow), SourceOccupancy)
	require.NotNil(t, popular)
	assert.Equal(t, domain.SentimentCaution, popular.Sentiment)
	assert.Contains(t, popular.Text, "96%")

	roomy := bySource(BuildInsights(makeFacility(withCapacity(100, 60, 0)), nil, testNow), SourceOccupancy)
	require.NotNil(t, roomy)
	assert.Equal(t, domain.SentimentPositive, roomy.Sentiment)
	assert.Contains(t, roomy.Text, "60%")

	assert.Nil(t, bySource(BuildInsights(makeFacility(withCapacity(100, 80, 0)), nil, testNow), SourceOccupancy))
}

func TestBuildInsights_ChildMatch(t *testing.T) {
	tests := []struct {
		name      string
		facility  *domain.Facility
		child     domain.Child
		sentiment domain.Sentiment
		contains  string
	}{
		{"infant at home daycare", makeFacility(withType(domain.TypeHome)), domain.Child{Name: "아기", BirthDate: "2025-01-01"}, domain.SentimentPositive, "영아"},
		{"nuri curriculum", makeFacility(withFeatures("누리과정")), domain.Child{Name: "도토리", BirthDate: "2022-06-01"}, domain.SentimentPositive, "누리과정"},
		{"general", makeFacility(withType(domain.TypePrivate)), domain.Child{Name: "참깨", BirthDate: "2024-06-01"}, domain.SentimentNeutral, "참깨(만 1세)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bySource(BuildInsightsN(tt.facility, &tt.child, testNow, 20), SourceChildMatch)
			require.NotNil(t, got)
			assert.Equal(t, tt.sentiment, got.Sentiment)
			assert.Contains(t, got.Text, tt.contains)
		})
	}
}

func TestBuildInsights_ChildMatchSkipped(t *testing.T) {
	f := makeFacility()
	assert.Nil(t, bySource(BuildInsightsN(f, nil, testNow, 20), SourceChildMatch))

	unborn := &domain.Child{Name: "예정", BirthDate: "2025-12-01"}
	assert.Nil(t, bySource(BuildInsightsN(f, unborn, testNow, 20), SourceChildMatch))

	invalid := &domain.Child{Name: "오류", BirthDate: "not-a-date"}
	assert.Nil(t, bySource(BuildInsightsN(f, invalid, testNow, 20), SourceChildMatch))
}

func TestBuildInsights_FeatureHighlight(t *testing.T) {
	got := bySource(BuildInsights(makeFacility(withFeatures("텃밭활동")), nil, testNow), SourceFeatureTags)
	require.NotNil(t, got)
	assert.Contains(t, got.Text, "텃밭")

	assert.Nil(t, bySource(BuildInsights(makeFacility(), nil, testNow), SourceFeatureTags))

	var count int
	for _, ins := range BuildInsightsN(makeFacility(withFeatures("숲체험", "영어", "텃밭")), nil, testNow, 20) {
		if ins.Source == SourceFeatureTags {
			count++
			assert.Contains(t, ins.Text, "텃밭")
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildInsights_CapAndOrder(t *testing.T) {
	f := makeFacility(
		withCapacity(120, 60, 0),
		withGrade("A"),
		withRating(4.8, 20),
		withFeatures("텃밭", "영어"),
	)
	f.OperatingHours = &domain.OperatingHours{Open: "07:30", Close: "19:30", ExtendedCare: true}
	child := &domain.Child{Name: "도토리", BirthDate: "2024-01-01"}

	insights := BuildInsights(f, child, testNow)
	require.Len(t, insights, DefaultMaxInsights)
	for _, ins := range insights {
		assert.Equal(t, domain.SentimentPositive, ins.Sentiment)
	}
	// Positive insights keep check order.
	assert.Equal(t, SourceCapacity, insights[0].Source)
	assert.Equal(t, SourceScale, insights[1].Source)

	all := BuildInsightsN(f, child, testNow, 20)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, sentimentRank[all[i-1].Sentiment], sentimentRank[all[i].Sentiment])
	}
}

func TestBuildInsights_ZeroCapacity(t *testing.T) {
	assert.NotPanics(t, func() {
		BuildInsights(makeFacility(withCapacity(0, 0, 0)), nil, testNow)
	})
}
