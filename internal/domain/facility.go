package domain

import "strings"

type Capacity struct {
	Total   int `json:"total" yaml:"total"`
	Current int `json:"current" yaml:"current"`
	Waiting int `json:"waiting" yaml:"waiting"`
}

type OperatingHours struct {
	Open         string `json:"open" yaml:"open"`
	Close        string `json:"close" yaml:"close"`
	ExtendedCare bool   `json:"extendedCare" yaml:"extendedCare"`
}

// Facility is a daycare or kindergarten record as loaded by the caller.
// Capacity.Current is populated unreliably upstream and must not be shown
// verbatim in comparison output.
type Facility struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Type            FacilityType    `json:"type" yaml:"type"`
	Status          FacilityStatus  `json:"status" yaml:"status"`
	Address         string          `json:"address" yaml:"address"`
	Lat             float64         `json:"lat" yaml:"lat"`
	Lng             float64         `json:"lng" yaml:"lng"`
	Distance        string          `json:"distance,omitempty" yaml:"distance,omitempty"`
	Phone           string          `json:"phone,omitempty" yaml:"phone,omitempty"`
	Capacity        Capacity        `json:"capacity" yaml:"capacity"`
	Features        []string        `json:"features" yaml:"features"`
	Rating          float64         `json:"rating" yaml:"rating"`
	ReviewCount     int             `json:"reviewCount" yaml:"reviewCount"`
	TeacherCount    *int            `json:"teacherCount,omitempty" yaml:"teacherCount,omitempty"`
	EvaluationGrade string          `json:"evaluationGrade,omitempty" yaml:"evaluationGrade,omitempty"`
	OperatingHours  *OperatingHours `json:"operatingHours,omitempty" yaml:"operatingHours,omitempty"`
}

// HasFeature reports whether any feature tag contains keyword.
func (f *Facility) HasFeature(keyword string) bool {
	for _, tag := range f.Features {
		if strings.Contains(tag, keyword) {
			return true
		}
	}
	return false
}

// ExtendedCare reports whether the facility runs extended-hours care.
func (f *Facility) ExtendedCare() bool {
	return f.OperatingHours != nil && f.OperatingHours.ExtendedCare
}

// Vacancy is total minus current headcount, floored at zero.
func (f *Facility) Vacancy() int {
	if n := f.Capacity.Total - f.Capacity.Current; n > 0 {
		return n
	}
	return 0
}
