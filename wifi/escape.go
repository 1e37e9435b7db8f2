package wifi

import "strings"

// A replacer is more efficient than calling strings.Replace multiple times.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
)

// Escape inserts a backslash before each of the four characters the record
// grammar reserves as delimiters: comma, colon, semicolon and backslash.
// Everything else, including multi-byte text, passes through unchanged.
func Escape(s string) string {
	return escaper.Replace(s)
}
