package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/alexanderramin/dotori/internal/insight"
)

// FormatFacilityHeader renders a facility name with its type and status.
func FormatFacilityHeader(f *domain.Facility) string {
	return fmt.Sprintf("%s %s %s\n", Bold(f.Name), Dim(string(f.Type)), StatusPill(f.Status))
}

// FormatInsights renders one line per insight, colored by sentiment.
func FormatInsights(items []insight.Insight) string {
	if len(items) == 0 {
		return Dim("표시할 특징이 없어요.") + "\n"
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			SentimentIndicator(it.Sentiment),
			SentimentStyle(it.Sentiment).Render(it.Text),
			Dim("· "+it.Source),
		))
	}
	return b.String()
}

// FormatTransferReasons renders reasons grouped under their category.
func FormatTransferReasons(reasons []insight.TransferReason) string {
	if len(reasons) == 0 {
		return Dim("뚜렷한 이동 사유를 찾지 못했어요.") + "\n"
	}
	var b strings.Builder
	for _, r := range reasons {
		b.WriteString(fmt.Sprintf("%s %s\n", SentimentIndicator(r.Sentiment), Bold(string(r.Category))))
		b.WriteString("   " + r.Text + " " + Dim("· "+r.Source) + "\n")
	}
	return b.String()
}
