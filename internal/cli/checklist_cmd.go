package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dotori/internal/checklist"
	"github.com/alexanderramin/dotori/internal/childage"
	"github.com/alexanderramin/dotori/internal/cli/formatter"
	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/alexanderramin/dotori/internal/logger"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Build enrollment checklists",
	}
	cmd.AddCommand(
		newChecklistProfileCmd(app),
		newChecklistFacilityCmd(app),
	)
	return cmd
}

// runForm runs a huh form on the terminal. It is a variable so tests can
// fill the answers without a TTY.
var runForm = func(a *profileAnswers) error {
	return profileForm(a).Run()
}

func newChecklistProfileCmd(app *App) *cobra.Command {
	var in checklist.ProfileInput
	var facilityType string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Documents to prepare for an application, from the family profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.FacilityType = domain.FacilityType(facilityType)

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return errors.New("--interactive requires a terminal")
				}
				answers := answersFrom(in)
				if err := runForm(answers); err != nil {
					return fmt.Errorf("profile form: %w", err)
				}
				in = answers.input()
			}

			if in.FacilityType == "" {
				return errors.New("facility type is required: use --type or --interactive")
			}
			if !domain.ValidFacilityTypes[in.FacilityType] {
				app.Log.Warn("unknown facility type, base documents only", logger.Fields{"type": string(in.FacilityType)})
			}
			if in.ChildBirthDate != "" {
				if _, ok := childage.ParseDate(in.ChildBirthDate); !ok {
					return fmt.Errorf("invalid birth date %q: expected YYYY-MM-DD", in.ChildBirthDate)
				}
			}

			c, err := app.Advisor.ProfileChecklist(cmd.Context(), in)
			if err != nil {
				return err
			}
			return app.render(cmd, c, func() string { return formatter.FormatChecklist(c) })
		},
	}

	f := cmd.Flags()
	f.StringVar(&facilityType, "type", "", "Facility type, e.g. 국공립 or 사립유치원")
	f.StringVar(&in.ChildBirthDate, "birth", "", "Child birth date (YYYY-MM-DD)")
	f.BoolVar(&in.HasMultipleChildren, "multi-child", false, "Family with three or more children")
	f.BoolVar(&in.IsDualIncome, "dual-income", false, "Both parents employed")
	f.BoolVar(&in.IsSingleParent, "single-parent", false, "Single-parent family")
	f.BoolVar(&in.HasDisability, "disability", false, "Child or guardian with a registered disability")
	f.StringVar(&in.Region, "region", "", "Region of residence")
	f.BoolVarP(&interactive, "interactive", "i", false, "Fill the profile in a form")
	return cmd
}

func newChecklistFacilityCmd(app *App) *cobra.Command {
	var facilityPath, childPath string

	cmd := &cobra.Command{
		Use:   "facility",
		Short: "Visit and enrollment checklist for a facility",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFacility(facilityPath)
			if err != nil {
				return err
			}
			child, err := loadChild(childPath)
			if err != nil {
				return err
			}
			c, err := app.Advisor.FacilityChecklist(cmd.Context(), f, child)
			if err != nil {
				return err
			}
			return app.render(cmd, c, func() string { return formatter.FormatChecklist(c) })
		},
	}

	cmd.Flags().StringVar(&facilityPath, "facility", "", "Facility file (YAML or JSON)")
	cmd.Flags().StringVar(&childPath, "child", "", "Child file for age-specific supplies")
	return cmd
}
