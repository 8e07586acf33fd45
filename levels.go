package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"squircles/internal/level"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#54a0ff")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Foreground(lipgloss.Color("#1dd1a1")).Align(lipgloss.Right)
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the levels in play order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printLevels(cmd.OutOrStdout())
		},
	}
}

func levelsTable() *table.Table {
	rows := make([][]string, 0, level.Count())
	for _, info := range level.Catalog() {
		rows = append(rows, []string{strconv.Itoa(info.Number), info.Name, info.Hint})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#c8d6e5"))).
		Headers("#", "LEVEL", "TASK").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return numberStyle
			}
			return cellStyle
		})
}

func printLevels(w io.Writer) error {
	if _, err := fmt.Fprintln(w, levelsTable().Render()); err != nil {
		return fmt.Errorf("failed to print levels: %w", err)
	}
	return nil
}
