package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Interpolate substitutes {{name}} placeholders in s with values from
// data. A placeholder with no matching entry is left in the output
// unchanged so a missing parameter is visible instead of blanked out.
func Interpolate(s string, data map[string]any) string {
	if len(data) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := data[name]
		if !ok {
			return match
		}
		return fmt.Sprint(value)
	})
}
