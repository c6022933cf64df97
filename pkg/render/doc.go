// Package render turns a filtered repository view into cards and writes
// them through one of three sinks.
//
// # Cards
//
// [BuildCards] maps each repository to a [Card] carrying title and link,
// description, language tag, star count and formatted update time. Each
// card gets an entrance delay of position × [StaggerStep], so cards appear
// one after another. The delay is cosmetic.
//
// # Sinks
//
//   - [RenderText]: bordered terminal boxes styled with lipgloss
//   - [RenderJSON]: machine-readable page for scripting
//   - [RenderHTML]: standalone HTML page with language buttons, a search
//     form and CSS-staggered cards, optionally minified
//
// Every sink writes the whole [Page]; output replaces, never appends to,
// what was shown before.
package render
