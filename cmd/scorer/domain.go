package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/startup-scorer/internal/adapters/http/dto"
)

func domainCmd(opts *globalOptions, build sessionBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "domain <name>",
		Short: "Look up and score a single domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := build(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			result, err := rt.service.ScoreDomain(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("scoring %s: %w", args[0], err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.ToScoreResponse(result))
		},
	}
}
