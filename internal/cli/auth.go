package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

func (c *cli) loginCmd() *cobra.Command {
	var correo, contrasena string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.app.Sessions.Login(cmd.Context(), correo, contrasena)
			if err != nil {
				return err
			}
			return c.printUser(cmd, user)
		},
	}
	cmd.Flags().StringVar(&correo, "correo", "", "account e-mail")
	cmd.Flags().StringVar(&contrasena, "contrasena", "", "account password")
	_ = cmd.MarkFlagRequired("correo")
	_ = cmd.MarkFlagRequired("contrasena")
	return cmd
}

func (c *cli) registerCmd() *cobra.Command {
	var p domain.RegisterPayload
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.app.Sessions.Register(cmd.Context(), p)
			if err != nil {
				return err
			}
			return c.printUser(cmd, user)
		},
	}
	cmd.Flags().StringVar(&p.Nombre, "nombre", "", "full name")
	cmd.Flags().StringVar(&p.Correo, "correo", "", "e-mail")
	cmd.Flags().StringVar(&p.Contrasena, "contrasena", "", "password (at least 6 characters)")
	cmd.Flags().StringVar(&p.Ciudad, "ciudad", "", "city")
	cmd.Flags().StringVar(&p.FechaNacimiento, "fecha-nacimiento", "", "birth date, YYYY-MM-DD")
	for _, name := range []string{"nombre", "correo", "contrasena", "ciudad", "fecha-nacimiento"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.app.Sessions.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.gate(cmd); err != nil {
				return err
			}
			return c.printUser(cmd, c.app.Sessions.State().User)
		},
	}
}

func (c *cli) printUser(cmd *cobra.Command, user *domain.User) error {
	if c.jsonOut {
		return c.printJSON(cmd, map[string]any{
			"user": user,
			"home": domain.HomeRoute(user.Rol),
		})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s <%s>\n", user.DisplayName(), user.Correo)
	fmt.Fprintf(out, "Rol:   %s\n", domain.Label(user.Rol))
	fmt.Fprintf(out, "Panel: %s\n", domain.HomeRoute(user.Rol))
	return nil
}
