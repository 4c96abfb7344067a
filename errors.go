package dynfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound matches any KeyError via errors.Is.
	ErrKeyNotFound = errors.New("dynfmt: key not found in dictionary")
	// ErrUnmatchedToken matches any TokenError via errors.Is.
	ErrUnmatchedToken = errors.New("dynfmt: unmatched token in template")
)

// KeyError reports a well-formed placeholder whose key is absent from the
// dictionary.
type KeyError struct {
	Template string // template that failed to format
	Key      string // missing key, exactly as written between the braces
	Pos      int    // byte offset of the placeholder's opening brace
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("dynfmt: key %q not found in dictionary (template %q, pos %d)", e.Key, e.Template, e.Pos)
}

// Unwrap makes errors.Is(err, ErrKeyNotFound) work.
func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}

// TokenError reports a structurally malformed template: an unmatched
// brace, or a second { opened before the first one closes.
type TokenError struct {
	Template string // template that failed to format
	Token    byte   // offending brace, '{' or '}'
	Pos      int    // byte offset of the offending brace
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("dynfmt: unmatched token %q (template %q, pos %d)", e.Token, e.Template, e.Pos)
}

// Unwrap makes errors.Is(err, ErrUnmatchedToken) work.
func (e *TokenError) Unwrap() error {
	return ErrUnmatchedToken
}
