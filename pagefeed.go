// Package pagefeed turns fragments of HTML pages into RSS feed items.
// It extracts content from a page with a CSS selector, rewrites relative
// image and link URLs against the page's address, and appends the result
// as a new item to an existing RSS feed file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gofeed/, http/).
package pagefeed
