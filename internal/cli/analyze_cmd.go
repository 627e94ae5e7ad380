package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dotori/internal/childage"
	"github.com/alexanderramin/dotori/internal/cli/formatter"
	"github.com/alexanderramin/dotori/internal/contract"
	"github.com/alexanderramin/dotori/internal/convctx"
	"github.com/alexanderramin/dotori/internal/input"
)

func loadHistory(path string) ([]contract.Turn, error) {
	if path == "" {
		return nil, nil
	}
	return input.LoadHistory(path)
}

func newClassifyCmd(app *App) *cobra.Command {
	var historyPath string

	cmd := &cobra.Command{
		Use:   "classify <message>",
		Short: "Classify a chat message into an intent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := loadHistory(historyPath)
			if err != nil {
				return err
			}
			res, err := app.Advisor.Analyze(cmd.Context(), strings.Join(args, " "), history)
			if err != nil {
				return err
			}
			return app.render(cmd, res, func() string { return formatter.FormatAnalysis(res) })
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", "", "Conversation history file (YAML or JSON)")
	return cmd
}

func newContextCmd(app *App) *cobra.Command {
	var historyPath string

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Show what the assistant remembers from a conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := loadHistory(historyPath)
			if err != nil {
				return err
			}
			c := convctx.ExtractConversationContextN(history, app.Config.Context.MaxFacilityIDs)
			return app.render(cmd, c, func() string { return formatter.FormatConversationContext(c) })
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", "", "Conversation history file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("history")
	return cmd
}

type regionResult struct {
	Region       convctx.RegionMatch `json:"region"`
	FacilityType string              `json:"facilityType,omitempty"`
	Query        string              `json:"query"`
}

func newRegionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "region <message>",
		Short: "Extract the region and facility type named in a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			t, _ := convctx.ExtractFacilityType(msg)
			res := regionResult{
				Region:       convctx.ExtractRegion(msg),
				FacilityType: string(t),
				Query:        convctx.SanitizeSearchQuery(msg),
			}
			return app.render(cmd, res, func() string {
				return formatter.FormatRegion(res.Region, t, res.Query)
			})
		},
	}
}

func newAgeCmd(app *App) *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "age <birthDate>",
		Short: "Show a child's age in months and class assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birth := args[0]
			if _, ok := childage.ParseDate(birth); !ok {
				return fmt.Errorf("invalid birth date %q: expected YYYY-MM-DD", birth)
			}

			ref := app.now()
			if on != "" {
				t, err := time.ParseInLocation(time.DateOnly, on, app.Config.Location())
				if err != nil {
					return fmt.Errorf("invalid --on date %q: expected YYYY-MM-DD", on)
				}
				ref = t
			}

			months := childage.MonthsOld(birth, ref)
			class := childage.CurrentClassAge(birth, ref)
			v := formatter.AgeView{
				BirthDate:  birth,
				On:         ref.Format(time.DateOnly),
				Months:     months,
				Age:        childage.FormatAge(months),
				ClassAge:   class.Age,
				ClassName:  class.Name,
				ClassLabel: childage.AgeClassLabel(birth, ref),
			}
			return app.render(cmd, v, func() string { return formatter.FormatAge(v) })
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Reference date (YYYY-MM-DD, default today)")
	return cmd
}
