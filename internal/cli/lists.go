package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"collab-dashboard/internal/mailinglist"
)

func newListsCmd(app *App) *cobra.Command {
	var search, status string

	cmd := &cobra.Command{
		Use:   "lists",
		Short: "List mailing lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctrl := sess.MailingLists

			snap := ctrl.Snapshot()
			if snap.Error != "" {
				return writeErr(cmd, errors.New(snap.Error))
			}

			ctrl.SetSearch(search)
			if err := ctrl.SetStatusFilter(mailinglist.Status(strings.ToUpper(status))); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": newListViews(ctrl.Filtered())})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive match on name or contact address")
	cmd.Flags().StringVar(&status, "status", "", "ACTIF or INACTIF")

	cmd.AddCommand(newListsCreateCmd(app))
	cmd.AddCommand(newListsToggleCmd(app))
	cmd.AddCommand(newListsRemoveCmd(app))
	return cmd
}

func newListsCreateCmd(app *App) *cobra.Command {
	var (
		name, address, description string
		status, access, send       string
		projectID                  int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a mailing list",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctrl := sess.MailingLists

			// prefill from the caller first, flags win
			ctrl.OpenCreateDialog(cmd.Context())
			draft := ctrl.Snapshot().Draft
			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("address") {
				draft.ContactAddress = address
			}
			draft.Description = description
			draft.ProjectID = projectID
			if status != "" {
				draft.Status = mailinglist.Status(strings.ToUpper(status))
			}
			if access != "" {
				draft.AccessType = mailinglist.AccessType(strings.ToUpper(access))
			}
			if send != "" {
				draft.SendPermission = mailinglist.SendPermission(strings.ToUpper(send))
			}
			ctrl.SetDraft(draft)

			item, err := ctrl.Create(cmd.Context())
			if err != nil {
				return writeErr(cmd, noticeOr(ctrl, err))
			}
			return writeOut(cmd, app, map[string]any{
				"data":   newListView(item),
				"notice": newNoticeView(ctrl.Snapshot().Notice),
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "List name (defaults to the caller's name)")
	cmd.Flags().StringVar(&address, "address", "", "Contact address (defaults to the caller's email)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&status, "status", "", "ACTIF (default) or INACTIF")
	cmd.Flags().StringVar(&access, "access", "", "PRIVE (default) or PUBLIC")
	cmd.Flags().StringVar(&send, "send", "", "TOUS, MEMBRES (default) or ADMINISTRATEURS")
	cmd.Flags().Int64Var(&projectID, "project", 0, "Associated project id")
	return cmd
}

func newListsToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a mailing list between ACTIF and INACTIF",
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
			ctrl := sess.MailingLists

			item, err := ctrl.ToggleStatus(cmd.Context(), id)
			if err != nil {
				return writeErr(cmd, noticeOr(ctrl, err))
			}
			return writeOut(cmd, app, map[string]any{
				"data":   newListView(item),
				"notice": newNoticeView(ctrl.Snapshot().Notice),
			})
		},
	}
}

func newListsRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a mailing list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			sess, err := app.session(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctrl := sess.MailingLists

			confirm := promptConfirm(cmd.InOrStdin(), cmd.ErrOrStderr())
			if yes {
				confirm = func(context.Context, string) bool { return true }
			}
			if err := ctrl.Remove(cmd.Context(), id, confirm); err != nil {
				return writeErr(cmd, noticeOr(ctrl, err))
			}
			return writeOut(cmd, app, map[string]any{"notice": newNoticeView(ctrl.Snapshot().Notice)})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// promptConfirm asks on out and accepts o/oui/y/yes from in.
func promptConfirm(in io.Reader, out io.Writer) mailinglist.ConfirmFunc {
	return func(ctx context.Context, prompt string) bool {
		fmt.Fprintf(out, "%s [o/N] ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "o", "oui", "y", "yes":
			return true
		}
		return false
	}
}

// noticeOr prefers the user-facing notice the controller recorded for err.
func noticeOr(ctrl mailinglist.Controller, err error) error {
	snap := ctrl.Snapshot()
	if snap.ValidationError != "" {
		return errors.New(snap.ValidationError)
	}
	if n := snap.Notice; n != nil && n.Kind == mailinglist.NoticeError {
		return errors.New(n.Message)
	}
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return id, nil
}
