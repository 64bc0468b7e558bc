// Package formatter holds the small string helpers the Telegram messages
// are rendered with.
package formatter

import (
	"strconv"
	"strings"
)

// FormatNumber groups n into thousands: 1234567 -> "1,234,567".
func FormatNumber(n int) string {
	digits := strconv.Itoa(n)

	var sign string
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var sb strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	sb.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+3])
	}
	return sign + sb.String()
}

// FormatSigned is FormatNumber with an explicit sign, for deltas:
// 120 -> "+120", -10 -> "-10".
func FormatSigned(n int) string {
	if n < 0 {
		return FormatNumber(n)
	}
	return "+" + FormatNumber(n)
}

// markdownV2Specials are the characters Telegram requires escaped outside
// code and link entities.
const markdownV2Specials = "_*[]()~`>#+-=|{}.!"

// EscapeMarkdownV2 backslash-escapes s for use in a MarkdownV2 message.
func EscapeMarkdownV2(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownV2Specials, r) {
			sb.WriteRune('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
