package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SeakMengs/MaintCert/internal/service"
	"github.com/spf13/cobra"
)

func validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code>",
		Short: "Look up a validation code the same way the public endpoint does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			// metrics stay nil, the cli has nothing to scrape
			view, err := service.NewValidationService(rt.repo.Certificate, nil, rt.logger).Validate(cmd.Context(), args[0])
			switch {
			case errors.Is(err, service.ErrInvalidFormat):
				return fmt.Errorf("%q is not shaped like a validation code", args[0])
			case errors.Is(err, service.ErrNotFound):
				return fmt.Errorf("no issued certificate has code %q", args[0])
			case err != nil:
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		},
	}
}
