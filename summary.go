package main

import (
	"fmt"

	"github.com/acapellastudio313-lab/e-minutasii/pkg/logger"
	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <id>",
		Short: "Generate the archive label summary for a case record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := service.NewCaseStore(service.SampleCases())
			record, err := store.Get(args[0])
			if err != nil {
				return err
			}

			ctx := logger.WithCaseID(cmd.Context(), record.ID)
			result := service.NewSummaryService(&cfg.Summary).Generate(ctx, record)

			fmt.Fprintln(cmd.OutOrStdout(), result.Text())
			if result.Kind != service.SummaryOK {
				return fmt.Errorf("no summary for case %s: %s", record.ID, result.Kind)
			}
			return nil
		},
	}
}
