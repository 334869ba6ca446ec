package main

import (
	"fmt"

	"github.com/SeakMengs/MaintCert/internal/model"
	"github.com/spf13/cobra"
)

func seedCompanyCommand() *cobra.Command {
	var company model.Company

	cmd := &cobra.Command{
		Use:   "seed-company",
		Short: "Create or replace the company shown on every certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			saved, err := rt.repo.Company.Upsert(cmd.Context(), nil, company)
			if err != nil {
				return fmt.Errorf("failed to save company: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "company saved: %s\n", saved.Nombre)
			return nil
		},
	}

	cmd.Flags().StringVar(&company.Nombre, "nombre", "", "company name")
	cmd.Flags().StringVar(&company.Rut, "rut", "", "company tax id")
	cmd.Flags().StringVar(&company.Direccion, "direccion", "", "address")
	cmd.Flags().StringVar(&company.Telefono, "telefono", "", "phone")
	cmd.Flags().StringVar(&company.Email, "email", "", "contact email")
	_ = cmd.MarkFlagRequired("nombre")

	return cmd
}
