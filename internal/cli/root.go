// Package cli implements the rotaractctl command tree.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/rotaract-d4465/portal/internal/app"
	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/infrastructure/apiclient"
	"github.com/rotaract-d4465/portal/internal/pkg/config"
)

// ErrGated is returned when a route gate turned the command away.
var ErrGated = errors.New("access denied")

// Options are the process-level inputs of the command tree.
type Options struct {
	Out      io.Writer
	Err      io.Writer
	Lookuper envconfig.Lookuper
	Log      zerolog.Logger
}

type cli struct {
	opts Options

	apiURL   string
	stateDir string
	jsonOut  bool

	app *app.App
}

// NewRootCmd builds the command tree.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Lookuper == nil {
		opts.Lookuper = envconfig.OsLookuper()
	}
	c := &cli{opts: opts}

	root := &cobra.Command{
		Use:   "rotaractctl",
		Short: "Command-line client of the Rotaract D4465 district platform",
		Long: `rotaractctl signs in to the district API and works with convocatorias,
proyectos and clubes according to the role of the signed-in user.

Examples:
  rotaractctl login --correo ana@club.org --contrasena secreto
  rotaractctl convocatorias list
  rotaractctl proyectos apply 12
  rotaractctl inscripciones list 4 --estado PENDIENTE`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if c.app != nil {
				return c.app.Close()
			}
			return nil
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.PersistentFlags().StringVar(&c.apiURL, "api", "", "district API base URL (overrides API_BASE_URL)")
	root.PersistentFlags().StringVar(&c.stateDir, "state-dir", "", "directory holding the stored session (overrides STATE_DIR)")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print JSON instead of tables")

	root.AddCommand(
		c.loginCmd(),
		c.registerCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.convocatoriasCmd(),
		c.inscripcionesCmd(),
		c.proyectosCmd(),
		c.clubesCmd(),
	)
	return root
}

// Execute runs the command tree and prints a failure the way the web client
// would show it.
func Execute(ctx context.Context, opts Options, args []string) int {
	root := NewRootCmd(opts)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ErrGated) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", apiclient.Message(err, ""))
		}
		return 1
	}
	return 0
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(cmd.Context(), c.opts.Lookuper)
	if err != nil {
		return err
	}
	if c.apiURL != "" {
		cfg.API.BaseURL = c.apiURL
	}
	if c.stateDir != "" {
		cfg.Store.StateDir = c.stateDir
	}
	a, err := app.New(cmd.Context(), cfg, c.opts.Log)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

// gate applies the auth gate and, when roles are given, the role gate. A
// refused command prints where the dashboard would have redirected.
func (c *cli) gate(cmd *cobra.Command, roles ...domain.Role) error {
	state := c.app.Sessions.State()
	decision := domain.EvaluateAuthGate(state, "")
	if decision.Outcome == domain.GateAllow && len(roles) > 0 {
		decision = domain.EvaluateRoleGate(state, roles)
	}
	if decision.Outcome == domain.GateAllow {
		return nil
	}
	if decision.Location == domain.LoginRoute || strings.HasPrefix(decision.Location, domain.LoginRoute+"?") {
		fmt.Fprintln(cmd.ErrOrStderr(), "No has iniciado sesión. Ejecuta: rotaractctl login")
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Tu rol (%s) no tiene acceso. Tu panel es %s\n",
			domain.Label(state.Role()), decision.Location)
	}
	return ErrGated
}

func (c *cli) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printTableHeader(w io.Writer, headers ...string) {
	fmt.Fprintln(w, strings.Join(headers, "\t"))
}

func printPageFooter[T any](w io.Writer, p domain.Page[T]) {
	fmt.Fprintf(w, "\nPágina %d de %d (%d en total)\n", p.Page+1, p.TotalPages, p.Total)
}
