package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

func (c *cli) clubesCmd() *cobra.Command {
	var params domain.PageParams
	cmd := &cobra.Command{
		Use:   "clubes",
		Short: "List the clubs of the district",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.gate(cmd, domain.RolePresidente, domain.RoleRepresentante); err != nil {
				return err
			}
			page, err := c.app.Client.ListClubes(cmd.Context(), params)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.printJSON(cmd, page)
			}
			w := newTable(cmd.OutOrStdout())
			printTableHeader(w, "ID", "NOMBRE", "CIUDAD", "MIEMBROS")
			for _, club := range page.Items {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", club.ID, club.Nombre, club.Ciudad, club.Miembros)
			}
			printPageFooter(w, page)
			return w.Flush()
		},
	}
	pageFlags(cmd, &params)
	return cmd
}
