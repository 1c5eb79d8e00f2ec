package routing

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// ResolveLegacy maps an old sub-path template such as "profile/:id" onto a
// dashboard base. Placeholders without a value in params are left as they
// are, colon included.
func ResolveLegacy(base, subPath string, params map[string]string) string {
	subPath = strings.TrimLeft(subPath, "/")
	if subPath == "" {
		return base
	}

	resolved := placeholderRe.ReplaceAllStringFunc(subPath, func(m string) string {
		if v, ok := params[m[1:]]; ok && v != "" {
			return v
		}
		return m
	})

	return strings.TrimRight(base, "/") + "/" + resolved
}
