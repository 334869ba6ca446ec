package main

import (
	"fmt"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/spf13/cobra"
)

func createUserCommand() *cobra.Command {
	var (
		user     model.User
		role     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an admin or technician account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user.Rol = constant.UserRole(role)
			if !user.Rol.IsValid() {
				return fmt.Errorf("role must be %s or %s", constant.UserRoleAdmin, constant.UserRoleTechnician)
			}

			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			created, err := rt.repo.User.Create(cmd.Context(), nil, user, password)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %s created with role %s (id %d)\n", created.Username, created.Rol, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&user.Username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "plain password, stored as a bcrypt hash")
	cmd.Flags().StringVar(&user.Nombre, "nombre", "", "display name")
	cmd.Flags().StringVar(&user.Email, "email", "", "email")
	cmd.Flags().StringVar(&role, "role", string(constant.UserRoleTechnician), "admin or tecnico")
	for _, name := range []string{"username", "password", "nombre", "email"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
