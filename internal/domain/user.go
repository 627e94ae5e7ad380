package domain

type Child struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	BirthDate string `json:"birthDate" yaml:"birthDate"`
	Gender    Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
}

type Region struct {
	Sido    string `json:"sido" yaml:"sido"`
	Sigungu string `json:"sigungu" yaml:"sigungu"`
	Dong    string `json:"dong" yaml:"dong"`
}

type User struct {
	ID                  string   `json:"id" yaml:"id"`
	Nickname            string   `json:"nickname" yaml:"nickname"`
	Children            []Child  `json:"children" yaml:"children"`
	Region              Region   `json:"region" yaml:"region"`
	Interests           []string `json:"interests" yaml:"interests"`
	Plan                Plan     `json:"plan,omitempty" yaml:"plan,omitempty"`
	OnboardingCompleted bool     `json:"onboardingCompleted" yaml:"onboardingCompleted"`
}

// PrimaryChild returns the first child by list order, or nil.
func (u *User) PrimaryChild() *Child {
	if u == nil || len(u.Children) == 0 {
		return nil
	}
	return &u.Children[0]
}
