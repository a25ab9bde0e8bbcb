package typescript

import "strings"

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// tsQuote renders s as a single-quoted TypeScript string literal.
func tsQuote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

// sanitizeDoc keeps a doc comment from closing the JSDoc block early.
func sanitizeDoc(doc string) string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	return strings.ReplaceAll(doc, "*/", `*\/`)
}
