// Package pathsafe sanitizes request paths and confines them to a document
// root. It is the admission gate in front of every filesystem access the
// server performs: a request path is first normalized into an absolute,
// traversal-free form, then mapped under the document root, and finally the
// mapped path is re-checked against the root before anything touches disk.
//
// Sanitization resolves ".." segments as a stack operation instead of
// stripping them textually, so sequences like "..../..;/" or repeated
// "../../.." can never climb above the synthetic root. The prefix check in
// IsSafe is deliberately redundant with sanitization: it protects any future
// caller that maps a path without sanitizing it first.
//
// All checks are lexical. Symlinks are not followed, so a symlink planted
// inside the root that points outside it is not caught here; that is a
// documented boundary of the check, not an oversight.
//
// Usage:
//
//	sanitized, resolved, err := pathsafe.ValidateAndResolve(req.URL.Path, docRoot)
//	if err != nil {
//		// 403, never touch the filesystem
//	}
package pathsafe
