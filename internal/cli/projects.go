package cli

import (
	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			out, err := sess.Projects.List(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}

			views := make([]projectView, len(out.Projects))
			for i, p := range out.Projects {
				views[i] = newProjectView(p)
			}
			return writeOut(cmd, app, map[string]any{"data": views})
		},
	}
	cmd.AddCommand(newProjectsShowCmd(app))
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			out, err := sess.Projects.Detail(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": newProjectView(out.Project)})
		},
	}
}
