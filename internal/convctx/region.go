// Package convctx extracts situational entities from chat text: the
// region a parent is talking about, the facility type they want and the
// facilities the assistant has already shown them.
package convctx

import (
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/dotori/internal/domain"
)

const (
	// ProvinceConfidence is assigned to a province-only match.
	ProvinceConfidence = 0.7

	maxQueryRunes = 200
)

// RegionMatch is the region mentioned in a message. Confidence is 0 when
// nothing matched, 0.7 for a province and at least 0.9 for a district.
type RegionMatch struct {
	Province   string  `json:"province,omitempty"`
	District   string  `json:"district,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Found reports whether any region field is set.
func (r RegionMatch) Found() bool {
	return r.Province != "" || r.District != ""
}

// ExtractRegion scans message for a district alias and then, failing that,
// a province alias.
func ExtractRegion(message string) RegionMatch {
	for _, d := range districts {
		if strings.Contains(message, d.alias) {
			return RegionMatch{Province: d.province, District: d.district, Confidence: d.confidence}
		}
	}
	for _, p := range provinces {
		if strings.Contains(message, p.alias) {
			return RegionMatch{Province: p.province, Confidence: ProvinceConfidence}
		}
	}
	return RegionMatch{}
}

// facilityTypes is scanned in order; the first hit wins.
var facilityTypes = []domain.FacilityType{
	domain.TypeNationalKindergarten,
	domain.TypePublicKindergarten,
	domain.TypePrivateKindergarten,
	domain.TypePublic,
	domain.TypePrivate,
	domain.TypeHome,
	domain.TypeWorkplace,
	domain.TypeCooperative,
	domain.TypeWelfare,
}

// ExtractFacilityType returns the first facility type named in message.
func ExtractFacilityType(message string) (domain.FacilityType, bool) {
	for _, t := range facilityTypes {
		if strings.Contains(message, string(t)) {
			return t, true
		}
	}
	return "", false
}

var queryReplacer = strings.NewReplacer(
	`"`, "", `'`, "", `\`, "",
	"-", " ", "~", " ",
)

// SanitizeSearchQuery strips quoting characters and range punctuation from
// a free-text query before it is handed to a search backend, and caps it at
// 200 runes.
func SanitizeSearchQuery(q string) string {
	q = strings.TrimSpace(queryReplacer.Replace(q))
	if utf8.RuneCountInString(q) <= maxQueryRunes {
		return q
	}
	return string([]rune(q)[:maxQueryRunes])
}
