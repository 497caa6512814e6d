package cli

import (
	"github.com/spf13/cobra"

	"collab-dashboard/internal/chatroom"
)

func newRoomsCmd(app *App) *cobra.Command {
	var mine bool

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List discussion rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			scope := chatroom.ScopeAll
			if mine {
				scope = chatroom.ScopeMine
			}

			out, err := sess.Rooms.List(cmd.Context(), scope)
			if err != nil {
				return writeErr(cmd, err)
			}
			views := make([]roomView, len(out.Rooms))
			for i, r := range out.Rooms {
				views[i] = newRoomView(r)
			}
			return writeOut(cmd, app, map[string]any{"data": views})
		},
	}

	cmd.Flags().BoolVar(&mine, "mine", false, "Only rooms the caller belongs to")
	cmd.AddCommand(&cobra.Command{
		Use:   "general",
		Short: "Create the general room",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			out, err := sess.Rooms.CreateGeneral(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": out.ID}})
		},
	})
	return cmd
}
