package main

import (
	"fmt"

	"github.com/SeakMengs/MaintCert/pkg/maintcert"
	"github.com/spf13/cobra"
)

func generateCodeCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate-code",
		Short: "Print sample validation codes without touching the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			for i := 0; i < count; i++ {
				code, err := maintcert.DrawCode()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many codes to print")

	return cmd
}
