package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

func (c *cli) proyectosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proyectos",
		Short: "Browse club projects and their members",
	}
	cmd.AddCommand(c.proyectosListCmd(), c.proyectosApplyCmd(), c.proyectosInscripcionesCmd(), c.proyectosAceptadosCmd())
	return cmd
}

func (c *cli) proyectosListCmd() *cobra.Command {
	var params domain.PageParams
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the projects of your club",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.gate(cmd, domain.RoleSocio, domain.RolePresidente, domain.RoleRepresentante); err != nil {
				return err
			}
			page, err := c.app.Proyectos.ListClub(cmd.Context(), params)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.printJSON(cmd, page)
			}
			if len(page.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No hay proyectos")
				return nil
			}
			w := newTable(cmd.OutOrStdout())
			printTableHeader(w, "ID", "TITULO", "LUGAR", "INSCRITOS", "ESTADO")
			for _, p := range page.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\t%s\n", p.ID, p.Titulo, p.Lugar, p.Inscritos, p.CupoMaximo, domain.ProyectoEstadoLabel(p))
			}
			printPageFooter(w, page)
			return w.Flush()
		},
	}
	pageFlags(cmd, &params)
	return cmd
}

func (c *cli) proyectosApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <id>",
		Short: "Register to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.gate(cmd, domain.RoleSocio); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.Proyectos.Apply(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inscripción enviada al proyecto %d\n", id)
			return nil
		},
	}
}

func (c *cli) proyectosInscripcionesCmd() *cobra.Command {
	var params domain.PageParams
	cmd := &cobra.Command{
		Use:   "inscripciones <id>",
		Short: "List every registration of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.gate(cmd, domain.RolePresidente); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			page, err := c.app.Proyectos.ListInscripciones(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.printJSON(cmd, page)
			}
			return printInscripciones(cmd, page.Items)
		},
	}
	pageFlags(cmd, &params)
	return cmd
}

func (c *cli) proyectosAceptadosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aceptados <id>",
		Short: "List the accepted members of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.gate(cmd, domain.RoleSocio); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			items, err := c.app.Proyectos.Accepted(cmd.Context(), id)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.printJSON(cmd, items)
			}
			return printInscripciones(cmd, items)
		},
	}
}
