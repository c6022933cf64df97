// Package pkg provides the libraries behind repocards.
//
// # Overview
//
// repocards fetches one GitHub account's public repositories and shows the
// most recently updated ones as cards, filterable by language and search
// text. The pkg directory is organized into these areas:
//
//  1. [showcase] - The pipeline: catalog, filter engine, debouncer, browser session
//  2. [github] - API client and repository fetcher
//  3. [render] - Card building and the text, JSON and HTML sinks
//  4. [server] - HTTP surface over a loaded catalog
//  5. Support: [config], [errors], [flagstore], [httputil], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	GitHub API
//	     ↓
//	[github] package (fetch, rate-limit and error classification)
//	     ↓
//	[showcase] package (sort into a catalog, filter, debounce search)
//	     ↓
//	[render] package (cards with staggered entrance delays)
//	     ↓
//	terminal / JSON / HTML / HTTP
//
// # Quick Start
//
//	client := github.NewClient(github.WithToken(os.Getenv("GITHUB_TOKEN")))
//	fetcher := github.NewFetcher(client, "noxx-code", 100)
//
//	b := showcase.NewBrowser(fetcher, target)
//	if err := b.Load(ctx); err != nil {
//	    // the target already shows the notice
//	}
//	b.SetLanguage("Go")
//	b.SetQuery("cli") // re-renders once typing pauses
//
// [showcase]: github.com/matzehuels/repocards/pkg/showcase
// [github]: github.com/matzehuels/repocards/pkg/github
// [render]: github.com/matzehuels/repocards/pkg/render
// [server]: github.com/matzehuels/repocards/pkg/server
// [config]: github.com/matzehuels/repocards/pkg/config
// [errors]: github.com/matzehuels/repocards/pkg/errors
// [flagstore]: github.com/matzehuels/repocards/pkg/flagstore
// [httputil]: github.com/matzehuels/repocards/pkg/httputil
// [observability]: github.com/matzehuels/repocards/pkg/observability
// [buildinfo]: github.com/matzehuels/repocards/pkg/buildinfo
package pkg
