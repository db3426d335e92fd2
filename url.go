package pagefeed

import (
	"net/url"
	"strings"
)

// Resolve turns ref into an absolute URL using base as the starting point.
// Absolute refs are returned unchanged. Relative refs are resolved against
// base with its last path segment treated as a directory, so
// Resolve("http://x.com/blog", "img/a.png") yields "http://x.com/blog/img/a.png".
// When the first segment of ref repeats the last segment of base the overlap
// is collapsed rather than duplicated.
func Resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL %q: %v", base, err)
	}
	if !b.IsAbs() {
		return "", Errorf(EINVALID, "base URL %q is not absolute", base)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", Errorf(EINVALID, "invalid reference %q: %v", ref, err)
	}
	if r.IsAbs() {
		return ref, nil
	}
	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
	}
	if ref == "" {
		return b.String(), nil
	}
	if !strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "..") {
		if seg := lastSegment(b.Path); seg != "" && seg == firstSegment(r.Path) {
			b.Path = strings.TrimSuffix(b.Path, seg+"/")
		}
	}
	return b.ResolveReference(r).String(), nil
}

// StripLastSegment removes the last path segment of rawURL, returning the
// enclosing directory with a trailing slash. A URL whose path is already
// the root is returned unchanged.
func StripLastSegment(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	segs := splitSegments(u.Path)
	if len(segs) == 0 {
		return rawURL, nil
	}
	u.Path = "/" + strings.Join(segs[:len(segs)-1], "/")
	if len(segs) > 1 {
		u.Path += "/"
	}
	return u.String(), nil
}

func splitSegments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func lastSegment(path string) string {
	segs := splitSegments(path)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

func firstSegment(path string) string {
	segs := splitSegments(path)
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}
