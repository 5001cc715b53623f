package isabsolute

import (
	"strings"
	"testing"
)

func TestHasScheme(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"single letter scheme", "a:", true},
		{"common scheme", "ftp://example.com", true},
		{"digits after first letter", "x11:", true},
		{"plus minus dot", "git+ssh://host", true},
		{"coap variant", "coap+tcp://host", true},
		{"dotted scheme", "a.b-c+d:", true},
		{"colon only terminator required", "scheme", false},
		{"empty", "", false},
		{"leading digit", "1a:", false},
		{"leading plus", "+a:", false},
		{"leading slash", "/path/to/file", false},
		{"leading colon", ":nothing", false},
		{"space inside scheme", "a b:", false},
		{"tilde inside scheme", "ht~tp://x", false},
		{"underscore inside scheme", "a_b:", false},
		{"multibyte rune inside scheme", "héllo:", false},
		{"uppercase accepted", "FTP://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasScheme(tt.input); got != tt.want {
				t.Errorf("hasScheme(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasHTTPScheme(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"http with authority", "http://example.com", true},
		{"https with authority", "https://example.com", true},
		{"bare http colon", "http:", true},
		{"bare https colon", "https:", true},
		{"uppercase", "HTTP://example.com", true},
		{"mixed case", "hTtPs://example.com", true},
		{"no colon", "http", false},
		{"https without colon", "https", false},
		{"httpx scheme", "httpx://example.com", false},
		{"httpss scheme", "httpss://example.com", false},
		{"htt prefix", "htt://example.com", false},
		{"leading space", " http://example.com", false},
		{"empty", "", false},
		{"short", "ht:", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasHTTPScheme(tt.input); got != tt.want {
				t.Errorf("hasHTTPScheme(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsWindowsDrivePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"uppercase drive", `C:\windows\path`, true},
		{"lowercase drive", `c:\temp`, true},
		{"bare drive root", `z:\`, true},
		{"forward slash form is not a drive path", "c:/windows", false},
		{"two characters only", "c:", false},
		{"digit drive", `1:\path`, false},
		{"no colon", `c\path`, false},
		{"unc path", `\\server\share`, false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWindowsDrivePath(tt.input); got != tt.want {
				t.Errorf("isWindowsDrivePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// referenceHTTPOnly is the unoptimized form of the HTTPOnly policy: full
// scheme grammar, then a case-insensitive token restriction.
func referenceHTTPOnly(s string) bool {
	if !hasScheme(s) {
		return false
	}
	token := strings.ToLower(s[:strings.IndexByte(s, ':')])
	return token == "http" || token == "https"
}

// TestClassify_FastPathEquivalence verifies the unrolled http(s) prefix
// check agrees with the scheme grammar plus token restriction on a corpus
// of boundary-heavy inputs.
func TestClassify_FastPathEquivalence(t *testing.T) {
	corpus := []string{
		"", "h", "ht", "htt", "http", "http:", "https", "https:",
		"http://example.com", "https://example.com", "HTTP://x", "hTtPs://x",
		"httpx://x", "httpss://x", "http2://x", "xhttp://x", "shttp://x",
		"ftp://x", "mailto:user@example.com", "a:", "a", ":",
		"/path", "./relative", "c:/windows", "http//missing-colon",
		"http ://space", "http\t://tab",
	}

	for _, s := range corpus {
		if got, want := hasHTTPScheme(s), referenceHTTPOnly(s); got != want {
			t.Errorf("hasHTTPScheme(%q) = %v, reference = %v", s, got, want)
		}
	}
}

// TestClassify_WindowsPathBeatsSchemeGrammar verifies the precedence rule:
// the drive check runs before the scheme rule under both policies.
func TestClassify_WindowsPathBeatsSchemeGrammar(t *testing.T) {
	inputs := []string{`C:\windows\path`, `c:\temp`, `x:\`}

	for _, s := range inputs {
		// The scheme grammar alone would accept the drive letter.
		if !hasScheme(s[:2] + "rest") {
			t.Fatalf("setup: %q should satisfy the scheme grammar", s[:2])
		}
		for _, policy := range []Policy{PolicyHTTPOnly, PolicyAnyScheme} {
			if classify(s, policy) {
				t.Errorf("classify(%q, %v) = true, want false", s, policy)
			}
		}
	}
}
