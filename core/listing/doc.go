// Package listing renders the HTML directory index served when a requested
// directory has no index file. Entry names come straight from the filesystem
// and are treated as untrusted input: display text is HTML-entity escaped and
// link targets are percent-encoded, in two separate passes that must never be
// conflated. Escaping the href would corrupt valid path characters; failing
// to escape the display text would let a hostile file name inject markup.
package listing
