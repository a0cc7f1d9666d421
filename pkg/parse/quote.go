package parse

import "strings"

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`, "\r", `\r`)

// Quote returns a double-quoted string literal that evaluates to s.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
