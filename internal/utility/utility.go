package utility

// Truncate clamps s to at most n runes. Generator output and case
// summaries are clamped before they are stored or embedded in prompts.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
