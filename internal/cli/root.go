package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"collab-dashboard/internal/session"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

type App struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	PrettyJSON bool
	Verbose    bool

	sess *session.Session
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "dashctl",
		Short:        "Command-line client for the collaboration dashboard",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Active lists whose name or address contains "team"
  dashctl lists --search team --status ACTIF

  # Create, toggle and delete
  dashctl lists create --name "Équipe dev" --project 3
  dashctl lists toggle 12
  dashctl lists rm 12

  # Counters
  dashctl summary
`),
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "api", envOr("API_BASE_URL", "http://localhost:8081/api"), "Remote API base URL")
	cmd.PersistentFlags().StringVar(&app.Token, "token", envOr("API_TOKEN", ""), "Bearer token")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", 15*time.Second, "Per-request timeout")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log remote calls to stderr")

	cmd.AddCommand(newListsCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newRoomsCmd(app))
	cmd.AddCommand(newSummaryCmd(app))

	return cmd
}

// session wires the domains and fetches the caller and the mailing lists once per invocation.
func (app *App) session(cmd *cobra.Command) (*session.Session, error) {
	if app.sess != nil {
		return app.sess, nil
	}

	l := log.NewNop()
	if app.Verbose {
		l = log.Init(log.ZapConfig{
			Level:    "debug",
			Mode:     log.ModeDevelopment,
			Encoding: log.EncodingConsole,
		})
	}

	gw := apigateway.NewClient(apigateway.Config{
		BaseURL: app.BaseURL,
		Timeout: app.Timeout,
	}, l)
	sess := session.NewBuilder(gw, l)(uuid.NewString(), app.Token)
	if err := sess.Warm(cmd.Context()); err != nil {
		l.Debugf(cmd.Context(), "cli.session Warm: %v", err)
	}

	app.sess = sess
	return sess, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if app.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
