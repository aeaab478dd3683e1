// Package greeting is the worked example of a string-contract conformance:
// an enum constructed from exactly two recognized keyword literals.
//
// In an annotated function,
//
//	var g greeting.Greeting = "hello"
//
// is validated and rewritten by litgo; "Hello" or "hell" would abort the
// build with "no matching keyword".
package greeting

import "github.com/funvibe/litgo/pkg/lit"

// Greeting is an enumerated greeting.
type Greeting int

const (
	Hello Greeting = iota
	Goodbye
)

func (g Greeting) String() string {
	switch g {
	case Hello:
		return "hello"
	case Goodbye:
		return "goodbye"
	}
	return "greeting(?)"
}

// FromLiteralStr maps content already proven to be a recognized keyword to
// its case. Anything else cannot arrive through generated code; it marks a
// conformance bug and panics.
func (Greeting) FromLiteralStr(lit string) Greeting {
	switch lit {
	case "hello":
		return Hello
	case "goodbye":
		return Goodbye
	}
	panic("greeting: literal escaped validation: " + lit)
}

// The validity predicate accepts exactly the two keywords, byte for byte:
// case sensitive, no trimming, no normalization.
func init() {
	lit.Register(lit.Conformance{
		Type: "github.com/funvibe/litgo/pkg/greeting.Greeting",
		CheckStr: func(s string) error {
			if s == "hello" || s == "goodbye" {
				return nil
			}
			return lit.Invalid("no matching keyword (want %q or %q)", "hello", "goodbye")
		},
	})
}
