package input

import (
	"github.com/alexanderramin/dotori/internal/contract"
	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/alexanderramin/dotori/internal/nba"
)

func LoadFacility(path string) (*domain.Facility, error) {
	var f domain.Facility
	if err := DecodeFile(path, KindFacility, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFacilities reads a list of at least two facilities.
func LoadFacilities(path string) ([]domain.Facility, error) {
	var fs []domain.Facility
	if err := DecodeFile(path, KindFacilities, &fs); err != nil {
		return nil, err
	}
	return fs, nil
}

func LoadChild(path string) (*domain.Child, error) {
	var c domain.Child
	if err := DecodeFile(path, KindChild, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadNBAContext reads the rule-engine state. The clock is left for the
// caller to set.
func LoadNBAContext(path string) (nba.Context, error) {
	var ctx nba.Context
	if err := DecodeFile(path, KindNBAContext, &ctx); err != nil {
		return nba.Context{}, err
	}
	return ctx, nil
}

func LoadHistory(path string) ([]contract.Turn, error) {
	var turns []contract.Turn
	if err := DecodeFile(path, KindHistory, &turns); err != nil {
		return nil, err
	}
	return turns, nil
}
