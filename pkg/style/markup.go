package style

import (
	"regexp"
	"strings"
)

// tagPattern matches one innermost [tag]content[/tag] pair
var tagPattern = regexp.MustCompile(`\[([a-z]+)\]([^\[]*)\[/([a-z]+)\]`)

// Render replaces markup tags with styled text. A tag is the lowercase name
// of a registered style ([error] uses "Error", [url] uses "URL"). Unknown
// tags are left in place.
func Render(text string) string {
	for {
		changed := false
		text = tagPattern.ReplaceAllStringFunc(text, func(match string) string {
			m := tagPattern.FindStringSubmatch(match)
			if m[1] != m[3] {
				return match
			}
			name, ok := lookupTag(m[1])
			if !ok {
				return match
			}
			changed = true
			return GetStyle(name).Render(m[2])
		})
		if !changed {
			return text
		}
	}
}

func lookupTag(tag string) (string, bool) {
	for name := range StyleRegistry {
		if strings.ToLower(name) == tag {
			return name, true
		}
	}
	return "", false
}
