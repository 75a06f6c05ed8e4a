package listing

import (
	"html"
	"net/url"
	"strings"
)

// GenerateHTML renders a directory index page for requestPath. Entries carry
// a trailing "/" when they name a directory; the caller establishes that
// marker, it is not detected here. Entries are rendered in the order given.
func GenerateHTML(entries []string, requestPath string) string {
	base := requestPath
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	title := "Directory listing for " + html.EscapeString(requestPath)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(title)
	b.WriteString("</title>\n</head>\n<body>\n<h1>")
	b.WriteString(title)
	b.WriteString("</h1>\n<hr>\n<ul>\n")

	if requestPath != "/" {
		b.WriteString("<li><a href=\"")
		b.WriteString(encodeHref(parentPath(requestPath)))
		b.WriteString("\">[..] Parent directory</a></li>\n")
	}

	for _, entry := range entries {
		isDir := strings.HasSuffix(entry, "/")
		display := strings.TrimSuffix(entry, "/")

		prefix := "[FILE] "
		if isDir {
			prefix = "[DIR] "
		}

		b.WriteString("<li><a href=\"")
		b.WriteString(encodeHref(base + entry))
		b.WriteString("\">")
		b.WriteString(prefix)
		b.WriteString(html.EscapeString(display))
		b.WriteString("</a></li>\n")
	}

	b.WriteString("</ul>\n<hr>\n</body>\n</html>\n")

	return b.String()
}

// encodeHref percent-encodes a path for use as an href attribute value,
// preserving "/" separators.
func encodeHref(p string) string {
	u := url.URL{Path: p}
	return u.EscapedPath()
}

// parentPath drops the last "/"-delimited component of p, returning "/" when
// fewer than two components remain.
func parentPath(p string) string {
	trimmed := strings.TrimSuffix(p, "/")
	idx := strings.LastIndexByte(trimmed, '/')
	if idx <= 0 {
		return "/"
	}
	return trimmed[:idx]
}
