package cli

import (
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := sess.Dashboard.Summary(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]int{
				"mailingLists":       s.MailingLists,
				"activeMailingLists": s.ActiveMailingLists,
				"projects":           s.Projects,
				"rooms":              s.Rooms,
			}})
		},
	}
}
