package isabsolute

// Classification rules. These operate on raw bytes: RFC 3986 restricts
// scheme characters to ASCII, so any multi-byte rune before the first colon
// disqualifies the scheme anyway.

// classify runs the rules in their required order: the Windows drive-path
// exclusion first, then the policy's scheme test. It is pure and total over
// all strings.
func classify(s string, policy Policy) bool {
	// Paths beginning with x:\ (where x is a-z or A-Z) are almost certainly
	// Windows absolute paths, but a lone letter followed by a colon satisfies
	// the generic scheme grammar, so the drive check has to run first. The
	// forward-slash form x:/ deliberately falls through to the scheme rule.
	if isWindowsDrivePath(s) {
		return false
	}

	// The unrolled http(s): prefix check is equivalent to running the full
	// scheme grammar and then restricting the token to http/https: any
	// string that passes the prefix check has a valid scheme, and no string
	// with scheme http or https fails it.
	if policy == PolicyHTTPOnly {
		return hasHTTPScheme(s)
	}

	return hasScheme(s)
}

// isWindowsDrivePath reports whether s begins with a drive designator in its
// canonical backslash form: an ASCII letter, a colon, and a backslash.
func isWindowsDrivePath(s string) bool {
	return len(s) >= 3 && isAlpha(s[0]) && s[1] == ':' && s[2] == '\\'
}

// hasScheme reports whether s begins with a scheme per RFC 3986 section 3.1:
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":".
func hasScheme(s string) bool {
	if len(s) == 0 || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == ':' {
			return true
		}
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	// Ran out of input without a colon.
	return false
}

// hasHTTPScheme reports whether s begins with http: or https:,
// case-insensitively.
func hasHTTPScheme(s string) bool {
	if len(s) < 5 {
		return false
	}
	if lower(s[0]) != 'h' || lower(s[1]) != 't' || lower(s[2]) != 't' || lower(s[3]) != 'p' {
		return false
	}
	if s[4] == ':' {
		return true
	}
	return lower(s[4]) == 's' && len(s) > 5 && s[5] == ':'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// lower folds an ASCII letter to lowercase. Non-letters come out mangled,
// which is fine for comparisons against lowercase letters.
func lower(c byte) byte {
	return c | 0x20
}
