package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/acapellastudio313-lab/e-minutasii/model"
	"github.com/acapellastudio313-lab/e-minutasii/service"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newSearchCmd() *cobra.Command {
	var (
		filters model.SearchFilters
		kind    string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List case records matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters.Kind = model.CaseKind(kind)
			if filters.Kind != "" && !filters.Kind.Valid() {
				return fmt.Errorf("invalid type: %s (valid values: %s, %s)", kind, model.KindLawsuit, model.KindPetition)
			}

			store := service.NewCaseStore(service.SampleCases())
			records := service.ApplyFilters(store.GetAll(), filters)

			switch format {
			case "json":
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(records)
			case "table":
				out := cmd.OutOrStdout()
				renderCases(out, records, terminalWidth(out))
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&filters.CaseNumber, "number", "n", "", "Case number substring, case-insensitive")
	cmd.Flags().StringVarP(&kind, "type", "t", "", "Case type: Gugatan or Permohonan")
	cmd.Flags().StringVarP(&filters.Year, "year", "y", "", "Registration year, exact")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

// terminalWidth returns the width of w when it is a terminal, else 120
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 120
}

// renderCases prints records as a table. Classification is truncated to fit width.
func renderCases(w io.Writer, records []model.CaseRecord, width int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Nomor Perkara", "Jenis", "Tahun", "Klasifikasi", "Status", "Lokasi"})

	classWidth := width - 100
	if classWidth < 12 {
		classWidth = 12
	}

	for _, r := range records {
		t.AppendRow(table.Row{
			r.ID,
			r.CaseNumber,
			string(r.Kind),
			strconv.Itoa(r.Year),
			runewidth.Truncate(r.Classification, classWidth, "..."),
			string(r.Status),
			formatLocation(r.State()),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "Total", len(records)})
	t.Render()
}

// formatLocation prints where an archived file is kept. Pending files have no place yet.
func formatLocation(state model.MinutationState) string {
	completed, ok := state.(model.Completed)
	if !ok {
		return "-"
	}
	loc := completed.Location
	return fmt.Sprintf("%s / Rak %s / Laci %s / Box %s", loc.Room, loc.Shelf, loc.Drawer, loc.Box)
}
