package fieldcrypt

import "strings"

// DefaultVisible is the number of trailing characters Mask leaves readable.
const DefaultVisible = 4

// Mask replaces all but the last visible characters of s with '*'. Strings no
// longer than visible are returned unchanged. visible <= 0 means DefaultVisible.
func Mask(s string, visible int) string {
	if visible <= 0 {
		visible = DefaultVisible
	}
	r := []rune(s)
	if len(r) <= visible {
		return s
	}
	return strings.Repeat("*", len(r)-visible) + string(r[len(r)-visible:])
}
