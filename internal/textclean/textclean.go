// Package textclean normalizes key/value text for single-line log output.
package textclean

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key normalizes s to NFC and replaces control characters, white space and
// "=" with "_", so the result cannot break the key=value grammar.
func Key(s string) string {
	return clean(keyRune, s)
}

// Value normalizes s to NFC and replaces control characters with "_".
// Spaces and "=" are left alone: the line format tolerates them in values.
func Value(s string) string {
	return clean(valueRune, s)
}

// clean chains NFC normalization with a rune replacement pass. Chained
// transformers carry buffer state, so a fresh one is built per call rather
// than shared.
func clean(repl func(rune) rune, s string) string {
	t := transform.Chain(norm.NFC, runes.Map(repl))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func keyRune(r rune) rune {
	if r == '=' || unicode.IsSpace(r) || unicode.IsControl(r) {
		return '_'
	}
	return r
}

func valueRune(r rune) rune {
	if unicode.IsControl(r) {
		return '_'
	}
	return r
}
