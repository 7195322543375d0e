package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

func (c *cli) inscripcionesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inscripciones",
		Short: "Review registrations to your club's calls",
	}
	cmd.AddCommand(c.inscripcionesListCmd(), c.inscripcionesDecideCmd(true), c.inscripcionesDecideCmd(false))
	return cmd
}

func (c *cli) inscripcionesListCmd() *cobra.Command {
	var estado string
	var params domain.PageParams
	cmd := &cobra.Command{
		Use:   "list <convocatoria-id>",
		Short: "List the registrations of a call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.gate(cmd, domain.RolePresidente); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			page, err := c.app.Convocatorias.ListInscripciones(cmd.Context(), id, params, domain.ParseInscripcionFilter(estado))
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.printJSON(cmd, page)
			}
			return printInscripciones(cmd, page.Items)
		},
	}
	cmd.Flags().StringVar(&estado, "estado", string(domain.FilterTodas), "TODAS, PENDIENTE or ACEPTADA")
	pageFlags(cmd, &params)
	return cmd
}

func (c *cli) inscripcionesDecideCmd(accept bool) *cobra.Command {
	use, short, done := "reject", "Reject a registration", "rechazada"
	if accept {
		use, short, done = "accept", "Accept a registration", "aceptada"
	}
	return &cobra.Command{
		Use:   use + " <convocatoria-id> <inscripcion-id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.gate(cmd, domain.RolePresidente); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			regID, err := parseID(args[1])
			if err != nil {
				return err
			}
			if err := c.app.Convocatorias.Decide(cmd.Context(), id, regID, accept); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inscripción %d %s\n", regID, done)
			return nil
		},
	}
}

func printInscripciones(cmd *cobra.Command, items []domain.Inscripcion) error {
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No hay inscripciones")
		return nil
	}
	w := newTable(cmd.OutOrStdout())
	printTableHeader(w, "ID", "NOMBRE", "CORREO", "ESTADO", "FECHA")
	for _, i := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i.ID, i.UsuarioNombre, i.UsuarioCorreo, i.Estado, i.FechaRegistro)
	}
	return w.Flush()
}
