package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/repocards/pkg/showcase"
)

// languagesCommand prints the language filter index with per-tag counts.
func (c *CLI) languagesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the language filter tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target := newCaptureTarget(ctx, "Fetching repositories...", !plain)
			b, err := c.loadCatalog(ctx, target)
			defer b.Close()
			if err != nil {
				if isInformational(err) {
					printWarning("%s", target.Notice())
					return nil
				}
				return err
			}

			catalog := b.Catalog()
			if plain {
				for _, lang := range catalog.Languages() {
					fmt.Fprintln(c.out, lang)
				}
				return nil
			}
			fmt.Fprintln(c.out, languageTable(catalog))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "one tag per line, no table")
	return cmd
}

// languageTable renders the filter index with how many repositories each
// tag matches before truncation.
func languageTable(catalog *showcase.Catalog) string {
	counts := make(map[string]int)
	for _, r := range catalog.Repos() {
		counts[r.Language]++
	}

	rows := [][]string{}
	for _, lang := range catalog.Languages() {
		n := counts[lang]
		if lang == showcase.AllLanguages {
			n = catalog.Len()
		}
		rows = append(rows, []string{lang, strconv.Itoa(n)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Language", "Repositories").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return StyleNumber.Padding(0, 1)
			default:
				return StyleValue.Padding(0, 1)
			}
		}).
		Render()
}
