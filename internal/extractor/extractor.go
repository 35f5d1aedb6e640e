package extractor

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Extractor scans Express-style route files line by line. It recognizes
// single-line declarations of the form <router>.<method>('<path>', ...)
// for a configured set of router identifiers, and collects the JSDoc-style
// comment block sitting directly above each declaration.
type Extractor struct {
	routeRe *regexp.Regexp
	openRe  *regexp.Regexp
}

// New builds an Extractor recognizing the given router receiver
// identifiers. With no arguments it recognizes "router".
func New(routers ...string) *Extractor {
	if len(routers) == 0 {
		routers = []string{"router"}
	}
	alt := strings.Join(lo.Map(routers, func(r string, _ int) string {
		return regexp.QuoteMeta(r)
	}), "|")

	return &Extractor{
		routeRe: regexp.MustCompile(`(?:` + alt + `)\.((?i:get|post|put|delete|patch))\s*\(\s*['"]([^'"]*)['"]`),
		openRe:  regexp.MustCompile(`^(?:` + alt + `)\.`),
	}
}

// Extract scans source and returns its route declarations in source order.
// basePath is prefixed to every declared subpath; file is recorded on the
// emitted routes for later reporting.
//
// The documentation buffer holds the comment lines seen since the last
// declaration or unrelated statement. Blank lines leave it alone, so a
// doc block may sit a line or two above its route. Only receiver-prefixed
// lines keep it alive through code, which is what lets a declaration
// follow a chain like router.use(...) without losing its block.
func (e *Extractor) Extract(source, basePath, file string) []Route {
	var routes []Route
	var buf []string

	for i, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)

		if isCommentLine(line) {
			if strings.HasPrefix(line, "/**") {
				buf = buf[:0] // a new doc block abandons whatever came before
			}
			if text := stripMarkers(line); text != "" {
				buf = append(buf, text)
			}
			continue
		}

		if m := e.routeRe.FindStringSubmatch(line); m != nil {
			routes = append(routes, buildRoute(m[1], m[2], basePath, file, i+1, buf))
			buf = buf[:0]
			continue
		}

		if line == "" {
			continue
		}
		if !e.openRe.MatchString(line) {
			buf = buf[:0] // unrelated code separates docs from any later route
		}
	}
	return routes
}

func buildRoute(method, sub, basePath, file string, line int, buf []string) Route {
	method = strings.ToUpper(method)

	full := basePath + sub
	if len(full) > 1 {
		full = strings.TrimSuffix(full, "/")
	}

	name := method + " " + sub
	var desc string
	for _, text := range buf {
		if idx := strings.Index(text, "@desc"); idx >= 0 {
			text = strings.TrimSpace(text[idx+len("@desc"):])
			desc = text
			name = text
			continue
		}
		if desc == "" && !strings.Contains(text, "@route") && !strings.Contains(text, "@access") {
			desc = text
		}
	}
	if desc == "" {
		desc = method + " " + full
	}

	return Route{
		Name:        name,
		Method:      method,
		Path:        full,
		SubPath:     sub,
		Description: desc,
		File:        file,
		Line:        line,
	}
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "/**") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "//")
}

// stripMarkers removes comment syntax and returns the bare text, which is
// empty for pure punctuation lines like "/**" or "*/".
func stripMarkers(line string) string {
	s := strings.TrimPrefix(line, "/**")
	s = strings.ReplaceAll(s, "*/", "")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "*")
	s = strings.TrimPrefix(s, "//")
	return strings.TrimSpace(s)
}
