// Package phone normalizes and masks phone numbers used as guest lookup keys.
package phone

import "strings"

const canonicalLen = 11

// Normalize converts arbitrary phone text into the canonical 11-digit lookup key.
// Non-digit characters are stripped, a leading "8" on 11-digit numbers is rewritten
// to "7", and 10-digit numbers are prefixed with "7". Anything that does not end up
// as exactly 11 digits yields the empty string, which callers must treat as
// "no match possible".
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	switch len(digits) {
	case canonicalLen:
		if digits[0] == '8' {
			digits = "7" + digits[1:]
		}
	case canonicalLen - 1:
		digits = "7" + digits
	default:
		return ""
	}

	if len(digits) != canonicalLen {
		return ""
	}
	return digits
}

// Mask redacts the middle of a phone number before it reaches logs, keeping the
// country code and the last two digits: "79991234567" -> "7999*****67".
// Short or empty values are fully masked rather than leaked.
func Mask(raw string) string {
	if raw == "" {
		return ""
	}
	if len(raw) < 7 {
		return strings.Repeat("*", len(raw))
	}
	return raw[:4] + strings.Repeat("*", len(raw)-6) + raw[len(raw)-2:]
}
