package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized metric label.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization; matching is a handful of anchored regexes.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/sources/\d+$`), template: "/sources/:id"},
	{pattern: regexp.MustCompile(`^/expenses/\d+$`), template: "/expenses/:id"},
	{pattern: regexp.MustCompile(`^/budgets/\d+$`), template: "/budgets/:id"},
	{pattern: regexp.MustCompile(`^/budgets/\d+/items$`), template: "/budgets/:id/items"},
	{pattern: regexp.MustCompile(`^/users/\d+$`), template: "/users/:id"},
}

// NormalizePath maps dynamic URL paths to fixed templates so metric labels
// stay at bounded cardinality. Static endpoints pass through unchanged;
// query parameters and trailing slashes are stripped first.
//
// Examples:
//
//	NormalizePath("/expenses/123")        // "/expenses/:id"
//	NormalizePath("/budgets/7/items")     // "/budgets/:id/items"
//	NormalizePath("/healthz")             // "/healthz"
//	NormalizePath("/sources/9?year=2026") // "/sources/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
