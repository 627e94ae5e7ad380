package domain

type FacilityType string

const (
	TypePublic      FacilityType = "국공립"
	TypePrivate     FacilityType = "민간"
	TypeHome        FacilityType = "가정"
	TypeWorkplace   FacilityType = "직장"
	TypeCooperative FacilityType = "협동"
	TypeWelfare     FacilityType = "사회복지"

	TypeNationalKindergarten FacilityType = "국립유치원"
	TypePublicKindergarten   FacilityType = "공립유치원"
	TypePrivateKindergarten  FacilityType = "사립유치원"
)

// IsKindergarten reports whether the type belongs to the kindergarten
// (school) track rather than the daycare track.
func (t FacilityType) IsKindergarten() bool {
	switch t {
	case TypeNationalKindergarten, TypePublicKindergarten, TypePrivateKindergarten:
		return true
	}
	return false
}

// ValidFacilityTypes is the canonical set of accepted facility type strings.
var ValidFacilityTypes = map[FacilityType]bool{
	TypePublic: true, TypePrivate: true, TypeHome: true, TypeWorkplace: true,
	TypeCooperative: true, TypeWelfare: true, TypeNationalKindergarten: true,
	TypePublicKindergarten: true, TypePrivateKindergarten: true,
}

// FacilityStatus is the public availability of a facility. "available"
// means the facility has an open place.
type FacilityStatus string

const (
	StatusAvailable FacilityStatus = "available"
	StatusWaiting   FacilityStatus = "waiting"
	StatusFull      FacilityStatus = "full"
)

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentCaution  Sentiment = "caution"
)
