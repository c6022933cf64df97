package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand starts the interactive card browser.
func (c *CLI) browseCommand() *cobra.Command {
	var noIntro bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse repository cards interactively",
		Long: `Open the interactive card browser.

Use tab and shift+tab to move through the language filters. Typing searches
names and descriptions; the view refreshes once typing pauses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !noIntro {
				if err := c.maybeIntro(ctx, c.newFlagStore()); err != nil {
					return err
				}
			}

			var program *tea.Program
			target := newTeaTarget(func(msg tea.Msg) {
				go program.Send(msg)
			})
			b := c.newBrowser(ctx, target)
			defer b.Close()

			model := NewBrowseModel(ctx, b, fmt.Sprintf("%s repositories", c.Config.User), c.Config.Stagger)
			program = tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noIntro, "no-intro", false, "skip the intro banner")
	return cmd
}
