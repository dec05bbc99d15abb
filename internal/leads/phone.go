package leads

import "strings"

// Israeli mobile numbers are 10 digits and start with "05".
const (
	phoneDigits = 10
	phonePrefix = "05"
)

// NormalizePhone strips every non-digit rune from raw and reports whether the
// result is a valid Israeli mobile number. It is total: any input, including
// the empty string, yields a verdict.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	valid := len(normalized) == phoneDigits && strings.HasPrefix(normalized, phonePrefix)
	return normalized, valid
}

// PhoneFeedback returns field-level Hebrew guidance for interactive use.
// Empty input and valid numbers produce no message. The distinction between
// "too short" and "wrong prefix" mirrors the landing page's inline feedback.
func PhoneFeedback(raw string) string {
	normalized, valid := NormalizePhone(raw)
	if valid || normalized == "" {
		return ""
	}
	if len(normalized) < phoneDigits {
		return "מספר הטלפון חייב להכיל 10 ספרות"
	}
	if !strings.HasPrefix(normalized, phonePrefix) {
		return "מספר הטלפון חייב להתחיל ב-05"
	}
	return "מספר טלפון לא תקין"
}
