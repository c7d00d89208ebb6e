package repositories

import (
	"fmt"
	"sort"
	"strings"
)

// orderByClause turns parsed sort[field]=asc|desc parameters into an ORDER BY
// using only columns the repository allow-lists. Fields are emitted in name
// order so the generated SQL is stable across calls. When no requested field
// survives the allow-list the repository's default ordering is used.
func orderByClause(requested map[string]string, allowed map[string]string, fallback string) string {
	fields := make([]string, 0, len(requested))
	for field := range requested {
		if _, ok := allowed[field]; ok {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return fallback
	}
	sort.Strings(fields)

	sorts := make([]string, 0, len(fields))
	for _, field := range fields {
		order := "ASC"
		if strings.ToLower(requested[field]) == "desc" {
			order = "DESC"
		}
		sorts = append(sorts, fmt.Sprintf("%s %s", allowed[field], order))
	}
	return "ORDER BY " + strings.Join(sorts, ", ")
}
