package mimetype

import "strings"

// DefaultContentType is returned for unmapped or missing extensions.
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	"html": "text/html; charset=utf-8",
	"htm":  "text/html; charset=utf-8",
	"css":  "text/css; charset=utf-8",
	"js":   "application/javascript",
	"json": "application/json",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"ico":  "image/x-icon",
	"svg":  "image/svg+xml",
	"txt":  "text/plain; charset=utf-8",
}

// ByPath returns the content type for a file path based on its final
// extension, compared case-insensitively. Only the last dot-delimited part of
// the last path segment counts, so "file.tar.gz" looks up "gz" and falls back
// to DefaultContentType.
func ByPath(path string) string {
	name := path[strings.LastIndexByte(path, '/')+1:]

	dot := strings.LastIndexByte(name, '.')
	if dot < 0 || dot == len(name)-1 {
		return DefaultContentType
	}

	if ct, ok := contentTypes[strings.ToLower(name[dot+1:])]; ok {
		return ct
	}

	return DefaultContentType
}
