// Package mimetype maps file extensions to content types for the static file
// server. The table is fixed and deterministic on purpose: consulting the
// platform MIME registry would make responses vary between hosts. Lookups are
// total; anything outside the table falls back to DefaultContentType.
package mimetype
