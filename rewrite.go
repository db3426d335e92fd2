package pagefeed

import (
	"regexp"
	"strings"
)

// Attribute patterns are matched case-sensitively and only against
// double-quoted values, mirroring the markup the extractor emits.
var (
	srcAttrRe    = regexp.MustCompile(`src\s*=\s*"([^"]*)"`)
	hrefAttrRe   = regexp.MustCompile(`href\s*=\s*"([^"]*)"`)
	srcsetAttrRe = regexp.MustCompile(`srcset\s*=\s*"([^"]*)"`)
)

// RewriteAttributes rewrites every src, href and srcset attribute in markup
// so that relative URLs become absolute against base. srcset values are
// resolved per candidate with width and density descriptors preserved.
// Attributes whose value cannot be resolved are left unchanged.
func RewriteAttributes(markup, base string) string {
	markup = srcsetAttrRe.ReplaceAllStringFunc(markup, func(attr string) string {
		value := srcsetAttrRe.FindStringSubmatch(attr)[1]
		return replaceAttrValue(attr, resolveSrcset(value, base))
	})
	markup = srcAttrRe.ReplaceAllStringFunc(markup, func(attr string) string {
		value := srcAttrRe.FindStringSubmatch(attr)[1]
		resolved, err := Resolve(base, value)
		if err != nil {
			return attr
		}
		return replaceAttrValue(attr, resolved)
	})
	markup = hrefAttrRe.ReplaceAllStringFunc(markup, func(attr string) string {
		value := hrefAttrRe.FindStringSubmatch(attr)[1]
		resolved, err := Resolve(base, value)
		if err != nil {
			return attr
		}
		return replaceAttrValue(attr, resolved)
	})
	return markup
}

// replaceAttrValue swaps the quoted value of a single matched attribute,
// keeping the attribute name and whitespace exactly as written.
func replaceAttrValue(attr, value string) string {
	head := attr[:strings.Index(attr, `"`)+1]
	return head + value + `"`
}

// resolveSrcset resolves the URL of each srcset candidate against base.
// Candidates that fail to resolve keep their original URL.
func resolveSrcset(value, base string) string {
	var out []string
	for _, candidate := range strings.Split(value, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		fields := strings.Fields(candidate)
		if resolved, err := Resolve(base, fields[0]); err == nil {
			fields[0] = resolved
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, ", ")
}
