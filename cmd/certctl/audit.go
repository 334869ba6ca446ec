package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errIntegrityViolations = errors.New("issued certificates with invalid validation codes found")

// Reports only. Broken rows are a data bug to fix at the source, never patched with fresh codes
func auditCodesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit-codes",
		Short: "List issued certificates whose validation code is missing or malformed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			violations, err := rt.repo.Certificate.ListIntegrityViolations(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(violations) == 0 {
				fmt.Fprintln(out, "all issued certificates have a well formed validation code")
				return nil
			}

			for _, c := range violations {
				fmt.Fprintf(out, "%d\t%s\t%q\n", c.ID, c.NumeroCertificado, c.CodigoValidacion)
			}
			rt.logger.Errorf("%d issued certificates have invalid validation codes", len(violations))

			return fmt.Errorf("%w: %d", errIntegrityViolations, len(violations))
		},
	}
}
