package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	rcerrors "github.com/matzehuels/repocards/pkg/errors"
	"github.com/matzehuels/repocards/pkg/render"
	"github.com/matzehuels/repocards/pkg/showcase"
)

// Output formats for the list command.
const (
	formatText = "text"
	formatJSON = "json"
	formatHTML = "html"
)

type listOptions struct {
	language string
	query    string
	format   string
	output   string
	columns  int
	minify   bool
}

// listCommand creates the one-shot render command.
func (c *CLI) listCommand() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Render the filtered repository cards once",
		Long: `Fetch the repository list once, apply the language and search filters,
and write the resulting cards as text, JSON or a standalone HTML page.

Examples:
  repocards list
  repocards list --lang Go --query cli
  repocards list --format html -o repos.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", showcase.AllLanguages, "language filter (exact tag, or All)")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "case-insensitive search over name and description")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, html")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().IntVar(&opts.columns, "columns", 2, "cards per row (text format)")
	cmd.Flags().BoolVar(&opts.minify, "minify", true, "minify HTML output")

	return cmd
}

func (c *CLI) runList(ctx context.Context, opts listOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	target := newCaptureTarget(ctx, "Fetching repositories...", opts.format == formatText && opts.output == "")
	b, err := c.loadCatalog(ctx, target)
	defer b.Close()

	if err != nil && !isInformational(err) {
		return err
	}
	if err == nil {
		prog.done(fmt.Sprintf("Loaded %d repositories", b.Catalog().Len()))
		if !b.Catalog().HasLanguage(opts.language) {
			printWarning("No repositories tagged %q", opts.language)
		}
		b.SetLanguage(opts.language)
		if opts.query != "" {
			b.SetQuery(opts.query)
			b.FlushQuery()
		}
	}

	page := c.newPage(b, target)
	if err := c.writePage(page, opts); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Wrote %d cards", len(page.Cards))
		printFile(opts.output)
	} else if opts.format == formatText && err == nil {
		printStats(len(page.Cards), b.Catalog().Len(), b.ActiveLanguage(), c.servedFromCache())
	}
	return nil
}

// isInformational reports outcomes that end a load without being failures.
func isInformational(err error) bool {
	return rcerrors.Is(err, rcerrors.ErrCodeRateLimited) || rcerrors.Is(err, rcerrors.ErrCodeEmptyResult)
}

// newPage assembles the render page from the browser state and whatever the
// target last displayed.
func (c *CLI) newPage(b *showcase.Browser, target *captureTarget) render.Page {
	return render.Page{
		Title:     c.Config.User + " repositories",
		User:      c.Config.User,
		Languages: b.Languages(),
		Active:    b.ActiveLanguage(),
		Query:     b.Query(),
		Cards:     render.BuildCardsStagger(target.View(), c.Config.Stagger, time.Local),
		Notice:    target.Notice(),
	}
}

func (c *CLI) writePage(page render.Page, opts listOptions) error {
	if opts.output == "" {
		return renderPage(c.out, page, opts)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := renderPage(f, page, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderPage(w io.Writer, page render.Page, opts listOptions) error {
	switch opts.format {
	case formatJSON:
		return render.RenderJSON(w, page)
	case formatHTML:
		return render.RenderHTML(w, page, render.HTMLOptions{Minify: opts.minify})
	default:
		return render.RenderText(w, page, render.TextOptions{Columns: opts.columns})
	}
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatHTML:
		return nil
	}
	return rcerrors.New(rcerrors.ErrCodeInvalidInput, "unsupported format %q (want %s)", format,
		strings.Join([]string{formatText, formatJSON, formatHTML}, ", "))
}
