package dispatch

import (
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/servedir/core/listing"
	"github.com/dmitrymomot/servedir/core/logger"
	"github.com/dmitrymomot/servedir/core/mimetype"
	"github.com/dmitrymomot/servedir/core/pathsafe"
)

const htmlContentType = "text/html; charset=utf-8"

// Dispatcher resolves request heads against a document root. Immutable after
// construction; safe for concurrent use.
type Dispatcher struct {
	root  string
	index string
	log   *logger.Logger
}

// New creates a Dispatcher serving the given document root. A relative root
// is resolved against the working directory so the admission gate always
// compares absolute paths. The root's existence is not validated here; the
// startup boundary verifies it before the server begins serving.
func New(root string, opts ...Option) *Dispatcher {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	d := &Dispatcher{
		root:  strings.TrimSuffix(root, "/"),
		index: "index.html",
		log:   logger.Discard(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch runs the request pipeline: method routing, path validation,
// resource resolution, response emission. It is a single pass, terminal on
// the first failure, and every failure maps to an HTTP status.
func (d *Dispatcher) Dispatch(req Request) ResponseDescription {
	uri := req.URI
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}
	if uri == "" {
		uri = "/"
	}

	switch req.Method {
	case MethodOptions:
		// Content-Type rides on every response, 204 included; Content-Length
		// is only set when a body is present.
		return ResponseDescription{
			StatusCode: http.StatusNoContent,
			Headers: append([]Header{
				{Name: "Content-Type", Value: "text/plain; charset=utf-8"},
			}, corsHeaders...),
		}
	case MethodGet, MethodHead:
	default:
		return textResponse(http.StatusMethodNotAllowed, "Method not allowed", false)
	}

	head := req.Method == MethodHead
	rid := shortRequestID()

	sanitized, resolved, err := pathsafe.ValidateAndResolve(uri, d.root)
	if err != nil {
		d.log.Warningf("[%s] %s %s -> 403 (%v)", rid, req.Method, req.URI, err)
		return textResponse(http.StatusForbidden, "Forbidden", head)
	}

	info, err := os.Stat(resolved)
	switch {
	case err != nil:
		d.log.Debugf("[%s] %s %s -> 404", rid, req.Method, req.URI)
		return textResponse(http.StatusNotFound, "Not Found", head)

	case info.IsDir():
		indexPath := filepath.Join(resolved, d.index)
		if fi, statErr := os.Stat(indexPath); statErr == nil && !fi.IsDir() {
			return d.serveFile(rid, req, indexPath)
		}
		return d.serveListing(rid, req, sanitized, resolved)

	default:
		return d.serveFile(rid, req, resolved)
	}
}

func (d *Dispatcher) serveFile(rid string, req Request, path string) ResponseDescription {
	data, err := os.ReadFile(path)
	if err != nil {
		// Stat succeeded but the read did not: a race or a permission issue.
		d.log.Errorf("[%s] %s %s -> 500 (read %s: %v)", rid, req.Method, req.URI, path, err)
		return textResponse(http.StatusInternalServerError, "Internal Server Error", req.Method == MethodHead)
	}

	d.log.Infof("[%s] %s %s -> 200 (%d bytes)", rid, req.Method, req.URI, len(data))

	return okResponse(mimetype.ByPath(path), data, req.Method == MethodHead)
}

func (d *Dispatcher) serveListing(rid string, req Request, sanitized, resolved string) ResponseDescription {
	dirEntries, err := os.ReadDir(resolved)
	if err != nil {
		d.log.Errorf("[%s] %s %s -> 500 (list %s: %v)", rid, req.Method, req.URI, resolved, err)
		return textResponse(http.StatusInternalServerError, "Internal Server Error", req.Method == MethodHead)
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		names = append(names, e.Name())
	}
	slices.Sort(names)

	// Directory markers come from a stat after sorting, so symlinked
	// directories are marked by what they point at, not by the dirent type.
	for i, name := range names {
		if fi, statErr := os.Stat(filepath.Join(resolved, name)); statErr == nil && fi.IsDir() {
			names[i] = name + "/"
		}
	}

	page := []byte(listing.GenerateHTML(names, sanitized))

	d.log.Infof("[%s] %s %s -> 200 (listing, %d entries)", rid, req.Method, req.URI, len(names))

	return okResponse(htmlContentType, page, req.Method == MethodHead)
}

func okResponse(contentType string, body []byte, head bool) ResponseDescription {
	rd := ResponseDescription{
		StatusCode: http.StatusOK,
		Headers: append([]Header{
			{Name: "Content-Type", Value: contentType},
			{Name: "Content-Length", Value: strconv.Itoa(len(body))},
		}, corsHeaders...),
	}
	if !head {
		rd.Body = body
	}
	return rd
}

func textResponse(status int, body string, head bool) ResponseDescription {
	rd := ResponseDescription{
		StatusCode: status,
		Headers: append([]Header{
			{Name: "Content-Type", Value: "text/plain; charset=utf-8"},
			{Name: "Content-Length", Value: strconv.Itoa(len(body))},
		}, corsHeaders...),
	}
	if !head {
		rd.Body = []byte(body)
	}
	return rd
}

// shortRequestID returns a compact correlation id for log lines.
func shortRequestID() string {
	return uuid.NewString()[:8]
}
