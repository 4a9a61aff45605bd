package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JonMunkholm/IRM/internal/core"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return LeafCommand{
		Use:   "inspect <report.csv>",
		Short: "Print an exported report and its tier counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return runInspect(cmd, f)
		},
	}.Build()
}

func runInspect(cmd *cobra.Command, r io.Reader) error {
	report, err := core.ReadCSV(r)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(report.Rows) == 0 {
		_, _ = fmt.Fprintln(w, Info("report has no rows"))
		return nil
	}

	_, _ = fmt.Fprint(w, renderTable(report.Header, report.Rows))

	tierCol := indexOf(report.Header, "Tier")
	if tierCol < 0 {
		return nil
	}
	counts := make(map[core.Tier]int)
	for _, row := range report.Rows {
		if tierCol < len(row) {
			counts[core.Tier(row[tierCol])]++
		}
	}

	_, _ = fmt.Fprintln(w)
	for _, tier := range core.Tiers {
		_, _ = fmt.Fprintf(w, "%s %d\n", TierText(tier)+":", counts[tier])
	}
	_, _ = fmt.Fprintf(w, "%s %d\n", Silent("Total:"), len(report.Rows))
	return nil
}

// renderTable aligns cells by display width so Hangul columns line up.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(cellText(row[i])))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cellText(cells[i])
			}
			pad := widths[i] - lipgloss.Width(cell)
			b.WriteString(style(cell))
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", pad+2))
			}
		}
		b.WriteString("\n")
	}

	writeRow(header, headerStyle.Render)
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

// cellText flattens multi-line values onto one line.
func cellText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func indexOf(items []string, want string) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}
