// Package pullquote extracts readable prose from web pages and video
// caption tracks and ranks short excerpts by sentiment polarity, surfacing
// the most strongly positive or negative quotes.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., trafilatura/, readability/,
// goquery/, govader/).
package pullquote
