package stringutil

const shortenLength = 16

// Shorten keeps the first and last eight characters of a long base58 value for log lines.
func Shorten(s string) string {
	if len(s) <= shortenLength {
		return s
	}
	return s[:shortenLength/2] + "..." + s[len(s)-shortenLength/2:]
}
