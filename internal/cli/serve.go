package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/repocards/pkg/config"
	"github.com/matzehuels/repocards/pkg/server"
)

// serveCommand starts the HTTP card server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen string
		minify bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the repository cards over HTTP",
		Long: `Fetch the repository list once and serve the card page.

Filtering happens per request (?lang=Go&q=cli); the list is not re-fetched
while the server runs. A failed or empty load is shown as a notice on the page.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			target := newCaptureTarget(ctx, "Fetching repositories...", false)
			b, err := c.loadCatalog(ctx, target)
			defer b.Close()
			if err != nil && !isInformational(err) {
				logger.Warn("serving without repositories", "error", err)
			}

			if listen == "" {
				listen = c.Config.Listen
			}
			s := server.New(b.Catalog(),
				server.WithLogger(logger),
				server.WithTitle(c.Config.User+" repositories"),
				server.WithUser(c.Config.User),
				server.WithNotice(target.Notice()),
				server.WithLimit(c.Config.MaxResults),
				server.WithStagger(c.Config.Stagger),
				server.WithMinify(minify),
			)
			return s.Run(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config, else "+config.DefaultListen+")")
	cmd.Flags().BoolVar(&minify, "minify", true, "minify HTML responses")
	return cmd
}
