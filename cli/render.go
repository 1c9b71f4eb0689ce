package cli

import (
	"regexp"

	"github.com/fatih/color"
)

var (
	keysField   = regexp.MustCompile(`("keys":\s*)(\[[^\]]*\])`)
	valuesField = regexp.MustCompile(`("values":\s*)(\[[^\]]*\])`)
)

// render colorizes a tree dump for terminal display: key arrays in
// cyan, value arrays in green, at every depth of the dump. Everything
// else — braces, the children arrays' brackets and nulls, indentation —
// is left uncolored.
func render(dump string) string {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	dump = keysField.ReplaceAllStringFunc(dump, func(m string) string {
		parts := keysField.FindStringSubmatch(m)
		return parts[1] + cyan(parts[2])
	})
	dump = valuesField.ReplaceAllStringFunc(dump, func(m string) string {
		parts := valuesField.FindStringSubmatch(m)
		return parts[1] + green(parts[2])
	})
	return dump
}
