package chat

import "strings"

// Normalize canonicalizes free text before any comparison: lowercase, strip
// everything except letters, digits, spaces, '.', '+', '-', collapse
// whitespace runs to one space, trim. Normalizing an already-normalized
// string returns it unchanged.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '+', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
