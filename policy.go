package isabsolute

// Policy selects which schemes count as absolute.
type Policy uint8

const (
	// PolicyHTTPOnly accepts only http: and https: schemes,
	// case-insensitively. This is the default.
	PolicyHTTPOnly Policy = iota

	// PolicyAnyScheme accepts any syntactically valid scheme per
	// RFC 3986 section 3.1.
	PolicyAnyScheme
)

func (p Policy) String() string {
	switch p {
	case PolicyHTTPOnly:
		return "http-only"
	case PolicyAnyScheme:
		return "any-scheme"
	default:
		return "unknown"
	}
}
