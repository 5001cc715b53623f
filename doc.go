// Package isabsolute reports whether a string is an absolute URL.
//
// A string is absolute when it begins with an explicit scheme per RFC 3986
// section 3.1. Under the default HTTPOnly policy only http: and https:
// schemes qualify; under AnyScheme any syntactically valid scheme does.
// Windows drive-letter paths such as `C:\` are rejected under both policies
// even though a single letter followed by a colon would satisfy the generic
// scheme grammar.
//
// The package does not parse or normalize URLs, does not validate authority,
// path, or query components, and does not resolve relative references. It is
// a classification function built for high call volume: results are memoized
// in a bounded store with insertion-order eviction, so repeated checks of
// the same input are O(1) after the first.
package isabsolute
