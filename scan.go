package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Simulate a QR scan and list the matching case records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters := &service.FilterState{}
			scanner := service.NewScanner(
				service.NewSimulatedDecoder(time.Duration(cfg.Scan.DelayMS)*time.Millisecond),
				filters.Set,
			)

			fmt.Fprintln(cmd.ErrOrStderr(), "Scanning...")
			result, err := scanner.Start(cmd.Context())
			if err != nil {
				return err
			}

			found, ok := <-result
			if !ok {
				if msg := scanner.State().LastError; msg != "" {
					return errors.New(msg)
				}
				return errors.New("scan cancelled")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Nomor: %s  Jenis: %s  Tahun: %s\n", found.CaseNumber, found.Kind, found.Year)
			store := service.NewCaseStore(service.SampleCases())
			out := cmd.OutOrStdout()
			renderCases(out, service.ApplyFilters(store.GetAll(), filters.Get()), terminalWidth(out))
			return nil
		},
	}
}
