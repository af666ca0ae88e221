// Package alphabet builds the ordered, deduplicated byte alphabets used by
// the brute-force engine, from a character-class selector string.
package alphabet

import "fmt"

// Alphabet is an ordered sequence of distinct bytes, the base of the
// brute-force odometer.
type Alphabet []byte

const (
	lowerClass   = "abcdefghijklmnopqrstuvwxyz"
	upperClass   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitClass   = "0123456789"
	symbolClass  = `!"#$%&'()*+,-./:;<=>?@[\]^_` + "`" + `{|}~`
	defaultClass = lowerClass + upperClass + digitClass + symbolClass
)

// InvalidSelectorError is returned by Build when a selector contains an
// unrecognized token, or produces an empty alphabet.
type InvalidSelectorError struct {
	Selector string
	Reason   string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("alphabet: invalid selector %q: %s", e.Selector, e.Reason)
}

// Build translates selector into an ordered alphabet. Tokens are applied
// left-to-right and are idempotent: repeating a class token contributes
// nothing the second time. The token 'x' resets the accumulator to the
// union of all four classes (in a, A, n, s order) and stops consuming the
// rest of the selector, regardless of what follows it.
//
//	a -> lowercase letters
//	A -> uppercase letters
//	n -> digits
//	s -> punctuation/symbols
//	x -> reset to a+A+n+s, then stop
func Build(selector string) (Alphabet, error) {
	if selector == "" {
		return nil, &InvalidSelectorError{Selector: selector, Reason: "empty selector"}
	}

	var seen [256]bool
	out := make(Alphabet, 0, len(defaultClass))

	add := func(class string) {
		for i := 0; i < len(class); i++ {
			b := class[i]
			if !seen[b] {
				seen[b] = true
				out = append(out, b)
			}
		}
	}

	for i := 0; i < len(selector); i++ {
		switch selector[i] {
		case 'a':
			add(lowerClass)
		case 'A':
			add(upperClass)
		case 'n':
			add(digitClass)
		case 's':
			add(symbolClass)
		case 'x':
			seen = [256]bool{}
			out = out[:0]
			add(defaultClass)
			return out, nil
		default:
			return nil, &InvalidSelectorError{
				Selector: selector,
				Reason:   fmt.Sprintf("unrecognized token %q", selector[i]),
			}
		}
	}

	if len(out) == 0 {
		// unreachable given the token set above, but guards the invariant
		// that a built alphabet is never empty.
		return nil, &InvalidSelectorError{Selector: selector, Reason: "produced an empty alphabet"}
	}

	return out, nil
}
