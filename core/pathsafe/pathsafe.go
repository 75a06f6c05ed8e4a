package pathsafe

import (
	"fmt"
	"path"
	"strings"
)

// Sanitize normalizes a raw request path into an absolute path with no empty,
// "." or ".." segments. Each segment is trimmed of surrounding whitespace;
// ".." pops the previously retained segment and is ignored at the root, so
// the result can never climb above "/". The empty string sanitizes to "/".
//
// Sanitize is idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(raw string) string {
	segments := strings.Split(raw, "/")
	kept := make([]string, 0, len(segments))

	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, seg)
		}
	}

	return "/" + strings.Join(kept, "/")
}

// Resolve maps a sanitized path onto the filesystem under root. The result is
// cleaned lexically; symlinks are not followed.
func Resolve(sanitized, root string) string {
	return path.Clean(strings.TrimSuffix(root, "/") + sanitized)
}

// IsSafe reports whether candidate stays within root. Both sides are cleaned
// independently; the candidate must equal the root or have the root as a
// prefix followed by a separator. This is the sole admission gate before any
// filesystem access, regardless of whether the candidate came from Sanitize.
func IsSafe(candidate, root string) bool {
	c := path.Clean(candidate)
	r := path.Clean(strings.TrimSuffix(root, "/"))

	if r == "/" || r == "." {
		return strings.HasPrefix(c, "/")
	}

	return c == r || strings.HasPrefix(c, r+"/")
}

// ValidateAndResolve composes Sanitize, Resolve and IsSafe. It returns the
// sanitized request path and the resolved filesystem path, or ErrOutsideRoot
// when the resolved path escapes the document root.
func ValidateAndResolve(raw, root string) (sanitized, resolved string, err error) {
	sanitized = Sanitize(raw)
	resolved = Resolve(sanitized, root)

	if !IsSafe(resolved, root) {
		return "", "", fmt.Errorf("%w: %q", ErrOutsideRoot, raw)
	}

	return sanitized, resolved, nil
}
