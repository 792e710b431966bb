package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/printworks/rainbowpress/pkg/paper"
)

// newPapersCmd creates the papers command, which lists the supported
// paper catalog with dimensions in inches.
func newPapersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "papers",
		Short: "List the supported paper sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(paper.Catalog)+1)
			for _, s := range paper.Catalog {
				rows = append(rows, []string{
					s.Name,
					fmt.Sprintf("%.2f\"", s.Width),
					fmt.Sprintf("%.2f\"", s.Height),
					fmt.Sprintf("%.1f sq in", s.Area()),
				})
			}
			rows = append(rows, []string{paper.CustomName, "--paper-width", "--paper-height", ""})

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Name", "Width", "Height", "Area").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return lipgloss.NewStyle().Foreground(colorWhite)
				})

			fmt.Println(t.Render())
			return nil
		},
	}
}
