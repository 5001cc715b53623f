package isabsolute_test

import (
	"fmt"

	isabsolute "github.com/jdmiranda/is-absolute-url"
)

func ExampleIsAbsolute() {
	fmt.Println(isabsolute.IsAbsolute("http://example.com"))
	fmt.Println(isabsolute.IsAbsolute("ftp://example.com"))
	fmt.Println(isabsolute.IsAbsolute("/path/to/file"))
	// Output:
	// true
	// false
	// false
}

func ExampleCheck() {
	// Any RFC 3986 scheme counts under PolicyAnyScheme.
	fmt.Println(isabsolute.Check("ftp://example.com", isabsolute.PolicyAnyScheme))

	// Windows drive paths are rejected under both policies.
	fmt.Println(isabsolute.Check(`C:\windows\path`, isabsolute.PolicyAnyScheme))
	// Output:
	// true
	// false
}

func ExampleNew() {
	// A dedicated classifier with its own bounded memo store.
	c := isabsolute.New(isabsolute.WithCacheSize(100))

	fmt.Println(c.IsAbsolute("https://example.com"))
	fmt.Println(c.Check("mailto:user@example.com", isabsolute.PolicyAnyScheme))
	// Output:
	// true
	// true
}

func ExampleClassifier_Classify() {
	c := isabsolute.New()

	// Dynamic inputs that are not strings are rejected with an error that
	// names the received type.
	_, err := c.Classify(42, isabsolute.PolicyHTTPOnly)
	fmt.Println(err)

	ok, _ := c.Classify("https://example.com", isabsolute.PolicyHTTPOnly)
	fmt.Println(ok)
	// Output:
	// isabsolute: input is not a string: got int
	// true
}
