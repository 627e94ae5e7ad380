package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive chat shell",
		Long: `Start an interactive session. Messages are classified against the
conversation so far; lines starting with / run shell commands or any
dotori subcommand, e.g. /age 2023-01-15.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("shell requires an interactive terminal")
			}
			app.rebase()
			m := newShellModel(cmd.Context(), app, shellHistoryPath())
			_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
