// Package dynfmt provides Python-style dynamic string formatting with
// {key} placeholders resolved against a string dictionary at runtime.
//
// The package supports flat string-to-string substitution only: no nested
// placeholders, no format specifiers, no expressions inside braces.
// Substituted values are inserted verbatim and never re-scanned, so a
// value containing braces cannot inject further placeholders. Literal
// braces are written as doubled-brace escapes ({{ and }}).
//
// # Basic Usage
//
// Format scans the template once, left to right, and returns the fully
// substituted string:
//
//	out, err := dynfmt.Format(
//		"I'm {name}. I'm {age} years old now.",
//		map[string]string{"name": "ABC", "age": "20"},
//	)
//	// Output: "I'm ABC. I'm 20 years old now."
//
// # Escaping
//
// Doubled braces produce a single literal brace and are checked before
// placeholder parsing, so {{ never opens a placeholder:
//
//	out, _ := dynfmt.Format("{{{age} }}{age}", map[string]string{"age": "15"})
//	// Output: "{15 }15"
//
// # Errors
//
// Formatting fails fast on the first malformed construct. There are
// exactly two failure kinds, each with a sentinel for errors.Is and a
// typed error for errors.As:
//
//   - KeyError (ErrKeyNotFound): a well-formed placeholder references a
//     key absent from the dictionary.
//   - TokenError (ErrUnmatchedToken): an unmatched { or }, or a second
//     { opened before the first one closes.
//
//	_, err := dynfmt.Format("{name}", map[string]string{})
//	var keyErr *dynfmt.KeyError
//	if errors.As(err, &keyErr) {
//		fmt.Println(keyErr.Key, keyErr.Pos) // "name" 0
//	}
//
// Keys are matched byte-for-byte against the text between the braces;
// { name } looks up " name ", padding included.
//
// # Thread Safety
//
// Format is stateless and reentrant. Concurrent calls are safe as long
// as the caller does not mutate the dictionary during a call; the
// dictionary is only read and never retained.
package dynfmt
