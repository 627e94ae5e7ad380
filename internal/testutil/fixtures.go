package testutil

import (
	"github.com/google/uuid"

	"github.com/alexanderramin/dotori/internal/domain"
)

// Facility options
type FacilityOption func(*domain.Facility)

func WithFacilityType(t domain.FacilityType) FacilityOption {
	return func(f *domain.Facility) {
		f.Type = t
	}
}

func WithStatus(s domain.FacilityStatus) FacilityOption {
	return func(f *domain.Facility) {
		f.Status = s
	}
}

func WithCapacity(total, current, waiting int) FacilityOption {
	return func(f *domain.Facility) {
		f.Capacity = domain.Capacity{Total: total, Current: current, Waiting: waiting}
	}
}

func WithRating(rating float64, reviews int) FacilityOption {
	return func(f *domain.Facility) {
		f.Rating = rating
		f.ReviewCount = reviews
	}
}

func WithFeatures(features ...string) FacilityOption {
	return func(f *domain.Facility) {
		f.Features = features
	}
}

func WithAddress(address string) FacilityOption {
	return func(f *domain.Facility) {
		f.Address = address
	}
}

func WithDistance(distance string) FacilityOption {
	return func(f *domain.Facility) {
		f.Distance = distance
	}
}

func WithTeachers(n int) FacilityOption {
	return func(f *domain.Facility) {
		f.TeacherCount = domain.IntPtr(n)
	}
}

func WithGrade(grade string) FacilityOption {
	return func(f *domain.Facility) {
		f.EvaluationGrade = grade
	}
}

func WithHours(open, closing string, extended bool) FacilityOption {
	return func(f *domain.Facility) {
		f.OperatingHours = &domain.OperatingHours{Open: open, Close: closing, ExtendedCare: extended}
	}
}

// NewTestFacility returns an open private daycare in Gangnam with room for
// 20 children, 15 enrolled and nobody waiting.
func NewTestFacility(name string, opts ...FacilityOption) *domain.Facility {
	f := &domain.Facility{
		ID:       uuid.New().String(),
		Name:     name,
		Type:     domain.TypePrivate,
		Status:   domain.StatusAvailable,
		Address:  "서울특별시 강남구 테헤란로 1",
		Lat:      37.4979,
		Lng:      127.0276,
		Capacity: domain.Capacity{Total: 20, Current: 15},
		Features: []string{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewTestChild returns a child born on birthDate (YYYY-MM-DD).
func NewTestChild(name, birthDate string) *domain.Child {
	return &domain.Child{
		ID:        uuid.New().String(),
		Name:      name,
		BirthDate: birthDate,
		Gender:    domain.GenderUnspecified,
	}
}

// User options
type UserOption func(*domain.User)

func WithChildren(children ...domain.Child) UserOption {
	return func(u *domain.User) {
		u.Children = children
	}
}

func WithInterests(ids ...string) UserOption {
	return func(u *domain.User) {
		u.Interests = ids
	}
}

func WithOnboarding(done bool) UserOption {
	return func(u *domain.User) {
		u.OnboardingCompleted = done
	}
}

// NewTestUser returns an onboarded free-plan user in Gangnam with no
// children and no interests.
func NewTestUser(nickname string, opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:                  uuid.New().String(),
		Nickname:            nickname,
		Children:            []domain.Child{},
		Region:              domain.Region{Sido: "서울특별시", Sigungu: "강남구", Dong: "역삼동"},
		Interests:           []string{},
		Plan:                domain.PlanFree,
		OnboardingCompleted: true,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
