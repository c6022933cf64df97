package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

//go:embed page.html.tmpl
var pageTemplate string

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"ms": func(c Card) int64 { return c.Delay.Milliseconds() },
}).Parse(pageTemplate))

// HTMLOptions controls the HTML sink.
type HTMLOptions struct {
	Minify bool
}

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	return m
}

// RenderHTML writes the page as a standalone HTML document.
func RenderHTML(w io.Writer, p Page, opts HTMLOptions) error {
	if !opts.Minify {
		return pageTmpl.Execute(w, p)
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, p); err != nil {
		return err
	}
	return minifier.Minify("text/html", w, &buf)
}
