package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repocards/pkg/flagstore"
)

// introLines is the banner shown before the first browse session.
var introLines = []string{
	"> Initializing system...",
	"> Loading security modules...",
	"> Connecting to threat intelligence feeds...",
	"> Access granted.",
}

// introLineDelay is the pause after each banner line.
const introLineDelay = 650 * time.Millisecond

// introCommand replays the banner or clears its seen flag.
func (c *CLI) introCommand() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "intro",
		Short: "Show the intro banner",
		Long:  `Show the intro banner. It is otherwise shown once, before the first browse session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := c.newFlagStore()
			if reset {
				if err := store.Delete(flagstore.IntroSeen); err != nil {
					loggerFromContext(cmd.Context()).Debug("reset intro flag", "error", err)
				}
				printSuccess("Intro will show on the next browse")
				return nil
			}
			if err := playIntro(cmd.Context(), c.out, introLineDelay); err != nil {
				return err
			}
			_ = store.Set(flagstore.IntroSeen, true)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "forget that the intro was shown")
	return cmd
}

// maybeIntro plays the banner once per store. Store failures only mean the
// banner may be shown again.
func (c *CLI) maybeIntro(ctx context.Context, store flagstore.Store) error {
	return c.maybeIntroWithDelay(ctx, store, introLineDelay)
}

func (c *CLI) maybeIntroWithDelay(ctx context.Context, store flagstore.Store, delay time.Duration) error {
	if seen, ok := store.Get(flagstore.IntroSeen); ok && seen {
		return nil
	}
	if err := playIntro(ctx, c.out, delay); err != nil {
		return err
	}
	if err := store.Set(flagstore.IntroSeen, true); err != nil {
		loggerFromContext(ctx).Debug("persist intro flag", "error", err)
	}
	return nil
}

// playIntro writes the banner line by line, pausing delay after each.
func playIntro(ctx context.Context, w io.Writer, delay time.Duration) error {
	for _, line := range introLines {
		fmt.Fprintln(w, StyleSuccess.Render(line))
		if delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}
