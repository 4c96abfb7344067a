package dynfmt

import "strings"

// Format replaces every {key} placeholder in template with the matching
// value from dict and returns the substituted string. Doubled braces
// ({{ and }}) produce a single literal brace. Values are inserted
// verbatim and never re-scanned for further placeholders.
//
// Example:
//
//	template: "Hello, {name}! You have {count} messages."
//	dict:     map[string]string{"name": "John", "count": "5"}
//	returns:  "Hello, John! You have 5 messages."
//
// Format fails on the first malformed construct: a *KeyError when a
// placeholder's key is absent from dict, a *TokenError when a brace is
// unmatched or a second { opens before the first closes. On failure the
// returned string is empty; no partial output is produced.
func Format(template string, dict map[string]string) (string, error) {
	if !strings.ContainsAny(template, "{}") {
		return template, nil
	}

	var out strings.Builder
	out.Grow(len(template))

	// Byte offsets of braces awaiting their pair, -1 when none. A brace
	// stays pending until the next character decides whether it is half
	// of an escape pair.
	openAt := -1
	closeAt := -1

	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case '{':
			switch {
			case openAt >= 0 && openAt+1 == i:
				// Escape pair {{.
				out.WriteByte('{')
				openAt = -1
			case openAt >= 0:
				return "", &TokenError{Template: template, Token: '{', Pos: openAt}
			default:
				openAt = i
			}
		case '}':
			switch {
			case closeAt >= 0 && closeAt+1 == i:
				// Escape pair }}.
				out.WriteByte('}')
				closeAt = -1
			case closeAt >= 0:
				return "", &TokenError{Template: template, Token: '}', Pos: closeAt}
			case openAt >= 0:
				// Closing a placeholder. Braces cannot appear inside a
				// key, so the key is the contiguous run after the {.
				key := template[openAt+1 : i]
				value, ok := dict[key]
				if !ok {
					return "", &KeyError{Template: template, Key: key, Pos: openAt}
				}
				out.WriteString(value)
				openAt = -1
			default:
				closeAt = i
			}
		default:
			if openAt < 0 {
				out.WriteByte(c)
			}
		}
	}

	if openAt >= 0 {
		return "", &TokenError{Template: template, Token: '{', Pos: openAt}
	}
	if closeAt >= 0 {
		return "", &TokenError{Template: template, Token: '}', Pos: closeAt}
	}
	return out.String(), nil
}
