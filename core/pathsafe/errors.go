package pathsafe

import "errors"

// ErrOutsideRoot is returned when a resolved path escapes the document root.
var ErrOutsideRoot = errors.New("path resolves outside document root")
