// Package showcase implements the repository card pipeline independent of any
// UI toolkit.
//
// # Pipeline
//
// A [Browser] is the session object. It runs a [Fetcher] once, stores the
// result as a [Catalog], and pushes filtered views to a [RenderTarget]:
//
//	Fetcher → Catalog (recency sorted) → language index
//	        → Apply(catalog, filter) → RenderTarget.RenderList
//
// Later language and search changes re-run only [Apply] and the render step
// against the already loaded catalog.
//
// # Filtering
//
// [Apply] is a pure function. A specific language keeps exact,
// case-sensitive matches; the search query is a case-insensitive substring
// match over name and description. Results keep catalog order and are
// truncated to [MaxResults].
//
// # Debounce
//
// Free-text input goes through a [Debouncer]: each new query cancels the
// pending re-filter and schedules a fresh one after [DebounceDelay]. Only the
// most recent query is ever applied.
package showcase
