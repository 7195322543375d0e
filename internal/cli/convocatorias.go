package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

func (c *cli) convocatoriasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convocatorias",
		Short: "Browse and manage calls for participation",
		Long: `Examples:
  rotaractctl convocatorias list
  rotaractctl convocatorias list --club
  rotaractctl convocatorias apply 7
  rotaractctl convocatorias create --titulo "Foro" --cupo 30 ...
  rotaractctl convocatorias update 7 --cupo 40`,
	}
	cmd.AddCommand(c.convocatoriasListCmd(), c.convocatoriasCreateCmd(), c.convocatoriasUpdateCmd(), c.convocatoriasApplyCmd())
	return cmd
}

func (c *cli) convocatoriasListCmd() *cobra.Command {
	var club bool
	var params domain.PageParams
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open calls, or those of your club with --club",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := c.app.Convocatorias.ListPublic
			if club {
				if err := c.gate(cmd, domain.RolePresidente); err != nil {
					return err
				}
				list = c.app.Convocatorias.ListClub
			} else if err := c.gate(cmd); err != nil {
				return err
			}

			page, err := list(cmd.Context(), params)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.printJSON(cmd, page)
			}
			if len(page.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No hay convocatorias")
				return nil
			}
			w := newTable(cmd.OutOrStdout())
			printTableHeader(w, "ID", "TITULO", "CLUB", "CUPO", "CIERRE", "ESTADO")
			for _, cv := range page.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n", cv.ID, cv.Titulo, cv.ClubNombre, cv.CupoMaximo, cv.FechaCierre, cv.Estado)
			}
			printPageFooter(w, page)
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&club, "club", false, "list the calls of your club (presidents only)")
	pageFlags(cmd, &params)
	return cmd
}

func (c *cli) convocatoriasCreateCmd() *cobra.Command {
	var p domain.CreateConvocatoriaPayload
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a call for your club",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.gate(cmd, domain.RolePresidente); err != nil {
				return err
			}
			created, err := c.app.Convocatorias.Create(cmd.Context(), p)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.printJSON(cmd, created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Convocatoria %d creada\n", created.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Titulo, "titulo", "", "title")
	f.StringVar(&p.Descripcion, "descripcion", "", "description")
	f.StringVar(&p.Requisitos, "requisitos", "", "requirements")
	f.IntVar(&p.CupoMaximo, "cupo", 0, "maximum participants")
	f.StringVar(&p.FechaPublicacion, "fecha-publicacion", "", "publication date")
	f.StringVar(&p.FechaCierre, "fecha-cierre", "", "closing date")
	f.StringVar(&p.FechaInicioPostulacion, "inicio-postulacion", "", "application start date")
	f.StringVar(&p.FechaFinPostulacion, "fin-postulacion", "", "application end date")
	for _, name := range []string{"titulo", "descripcion", "requisitos", "cupo", "fecha-publicacion", "fecha-cierre", "inicio-postulacion", "fin-postulacion"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (c *cli) convocatoriasUpdateCmd() *cobra.Command {
	var (
		titulo, descripcion, requisitos string
		cierre, inicio, fin             string
		cupo                            int
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a call; blank flags are not sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.gate(cmd, domain.RolePresidente); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p := domain.UpdateConvocatoriaPayload{
				Titulo:                 changed(cmd, "titulo", titulo),
				Descripcion:            changed(cmd, "descripcion", descripcion),
				Requisitos:             changed(cmd, "requisitos", requisitos),
				FechaCierre:            changed(cmd, "fecha-cierre", cierre),
				FechaInicioPostulacion: changed(cmd, "inicio-postulacion", inicio),
				FechaFinPostulacion:    changed(cmd, "fin-postulacion", fin),
			}
			if cmd.Flags().Changed("cupo") {
				p.CupoMaximo = &cupo
			}
			updated, err := c.app.Convocatorias.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			if updated == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Nada que actualizar")
				return nil
			}
			if c.jsonOut {
				return c.printJSON(cmd, updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Convocatoria %d actualizada\n", updated.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&titulo, "titulo", "", "title")
	f.StringVar(&descripcion, "descripcion", "", "description")
	f.StringVar(&requisitos, "requisitos", "", "requirements")
	f.IntVar(&cupo, "cupo", 0, "maximum participants")
	f.StringVar(&cierre, "fecha-cierre", "", "closing date")
	f.StringVar(&inicio, "inicio-postulacion", "", "application start date")
	f.StringVar(&fin, "fin-postulacion", "", "application end date")
	return cmd
}

func (c *cli) convocatoriasApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <id>",
		Short: "Register to a call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.gate(cmd, domain.RoleInteresado); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.Convocatorias.Apply(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inscripción enviada a la convocatoria %d\n", id)
			return nil
		},
	}
}

func pageFlags(cmd *cobra.Command, params *domain.PageParams) {
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&params.Size, "size", 0, "page size (server default when 0)")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q: %w", raw, domain.ErrInvalidID)
	}
	return id, nil
}

// changed returns &value when the flag was given on the command line.
func changed(cmd *cobra.Command, flag, value string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}
