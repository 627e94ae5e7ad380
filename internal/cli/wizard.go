package cli

import (
	"errors"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/dotori/internal/checklist"
	"github.com/alexanderramin/dotori/internal/childage"
	"github.com/alexanderramin/dotori/internal/cli/formatter"
	"github.com/alexanderramin/dotori/internal/domain"
)

// dotoriHuhTheme returns a huh theme drawn from the formatter palette.
func dotoriHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: acorn accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorAcorn)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorAcorn)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✔] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorAcorn).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorAcorn)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorAcorn)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// Profile situations offered by the multi-select.
const (
	situationMultiChild = "multi"
	situationDualIncome = "dual"
	situationSingle     = "single"
	situationDisability = "disability"
)

// profileAnswers is the form state behind the profile wizard.
type profileAnswers struct {
	facilityType string
	birthDate    string
	situations   []string
	region       string
}

func answersFrom(in checklist.ProfileInput) *profileAnswers {
	a := &profileAnswers{
		facilityType: string(in.FacilityType),
		birthDate:    in.ChildBirthDate,
		region:       in.Region,
	}
	flags := []struct {
		on  bool
		key string
	}{
		{in.HasMultipleChildren, situationMultiChild},
		{in.IsDualIncome, situationDualIncome},
		{in.IsSingleParent, situationSingle},
		{in.HasDisability, situationDisability},
	}
	for _, f := range flags {
		if f.on {
			a.situations = append(a.situations, f.key)
		}
	}
	return a
}

func (a *profileAnswers) input() checklist.ProfileInput {
	return checklist.ProfileInput{
		FacilityType:        domain.FacilityType(a.facilityType),
		ChildBirthDate:      a.birthDate,
		HasMultipleChildren: slices.Contains(a.situations, situationMultiChild),
		IsDualIncome:        slices.Contains(a.situations, situationDualIncome),
		IsSingleParent:      slices.Contains(a.situations, situationSingle),
		HasDisability:       slices.Contains(a.situations, situationDisability),
		Region:              a.region,
	}
}

var facilityTypeOrder = []domain.FacilityType{
	domain.TypePublic, domain.TypePrivate, domain.TypeHome, domain.TypeWorkplace,
	domain.TypeCooperative, domain.TypeWelfare, domain.TypeNationalKindergarten,
	domain.TypePublicKindergarten, domain.TypePrivateKindergarten,
}

func validateOptionalBirthDate(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := childage.ParseDate(s); !ok {
		return errors.New("YYYY-MM-DD 형식으로 입력해주세요")
	}
	return nil
}

// profileForm asks for the facility type, the child's birth date and the
// family situation, writing into a.
func profileForm(a *profileAnswers) *huh.Form {
	types := make([]huh.Option[string], len(facilityTypeOrder))
	for i, t := range facilityTypeOrder {
		types[i] = huh.NewOption(string(t), string(t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("어떤 시설에 지원하나요?").
				Options(types...).
				Value(&a.facilityType),
			huh.NewInput().
				Title("아이 생년월일").
				Description("비워두면 연령반 안내를 생략해요").
				Placeholder("2023-01-15").
				Value(&a.birthDate).
				Validate(validateOptionalBirthDate),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("해당하는 항목을 모두 고르세요").
				Options(
					huh.NewOption("다자녀", situationMultiChild),
					huh.NewOption("맞벌이", situationDualIncome),
					huh.NewOption("한부모", situationSingle),
					huh.NewOption("장애", situationDisability),
				).
				Value(&a.situations),
			huh.NewInput().
				Title("지역").
				Placeholder("서울특별시 강남구").
				Value(&a.region),
		),
	).WithTheme(dotoriHuhTheme()).WithShowHelp(false)
}
