package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/dotori/internal/cli/formatter"
	"github.com/alexanderramin/dotori/internal/domain"
	"github.com/alexanderramin/dotori/internal/input"
	"github.com/alexanderramin/dotori/internal/insight"
)

func loadChild(path string) (*domain.Child, error) {
	if path == "" {
		return nil, nil
	}
	return input.LoadChild(path)
}

func loadFacility(path string) (*domain.Facility, error) {
	if path == "" {
		return nil, nil
	}
	return input.LoadFacility(path)
}

func newNBACmd(app *App) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "nba",
		Short: "Pick the next best actions for a user",
		Long: `Evaluate the next-best-action rules against a user context file.
A context without a user yields the login prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nctx, err := input.LoadNBAContext(inputPath)
			if err != nil {
				return err
			}
			items, err := app.Advisor.Actions(cmd.Context(), nctx)
			if err != nil {
				return err
			}
			return app.render(cmd, items, func() string { return formatter.FormatActions(items) })
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "User context file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newReportCmd(app *App) *cobra.Command {
	var facilitiesPath, childPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compare two or more facilities side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			facilities, err := input.LoadFacilities(facilitiesPath)
			if err != nil {
				return err
			}
			child, err := loadChild(childPath)
			if err != nil {
				return err
			}
			r, err := app.Advisor.Report(cmd.Context(), facilities, child)
			if err != nil {
				return err
			}
			return app.render(cmd, r, func() string { return formatter.FormatReport(r) })
		},
	}

	cmd.Flags().StringVar(&facilitiesPath, "facilities", "", "Facility list file (YAML or JSON)")
	cmd.Flags().StringVar(&childPath, "child", "", "Child file used for the age note")
	_ = cmd.MarkFlagRequired("facilities")
	return cmd
}

func newInsightsCmd(app *App) *cobra.Command {
	var facilityPath, childPath string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Highlight what stands out about one facility",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := input.LoadFacility(facilityPath)
			if err != nil {
				return err
			}
			child, err := loadChild(childPath)
			if err != nil {
				return err
			}
			out, err := app.Advisor.Insights(cmd.Context(), f, child)
			if err != nil {
				return err
			}
			return app.render(cmd, out, func() string {
				return formatter.FormatFacilityHeader(f) + formatter.FormatInsights(out)
			})
		},
	}

	cmd.Flags().StringVar(&facilityPath, "facility", "", "Facility file (YAML or JSON)")
	cmd.Flags().StringVar(&childPath, "child", "", "Child file for the age match")
	_ = cmd.MarkFlagRequired("facility")
	return cmd
}

func newReasonsCmd(app *App) *cobra.Command {
	var facilityPath, previousPath string
	var siblings int
	var waitlistWon bool

	cmd := &cobra.Command{
		Use:   "reasons",
		Short: "List reasons a move away from a facility could make sense",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := input.LoadFacility(facilityPath)
			if err != nil {
				return err
			}
			prev, err := loadFacility(previousPath)
			if err != nil {
				return err
			}
			out, err := app.Advisor.TransferReasons(cmd.Context(), insight.TransferInput{
				Facility:          f,
				PreviousFacility:  prev,
				SiblingCount:      siblings,
				PublicWaitlistWon: waitlistWon,
			})
			if err != nil {
				return err
			}
			return app.render(cmd, out, func() string {
				return formatter.FormatFacilityHeader(f) + formatter.FormatTransferReasons(out)
			})
		},
	}

	cmd.Flags().StringVar(&facilityPath, "facility", "", "Current facility file (YAML or JSON)")
	cmd.Flags().StringVar(&previousPath, "previous", "", "Facility the family attended before")
	cmd.Flags().IntVar(&siblings, "siblings", 0, "Number of siblings in the household")
	cmd.Flags().BoolVar(&waitlistWon, "waitlist-won", false, "A public waitlist place has been offered")
	_ = cmd.MarkFlagRequired("facility")
	return cmd
}
