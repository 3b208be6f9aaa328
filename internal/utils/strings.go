package utils

import (
	"sort"
	"strings"

	"github.com/asokolsky/secretsettings/internal/ui"
)

// FormatList formats names as an indented list, one per line.
func FormatList(names []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString("    - ")
		b.WriteString(ui.Realm.Sprint(name))
		b.WriteString("\n")
	}
	return b.String()
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
