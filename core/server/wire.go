package server

import (
	"net/http"

	"github.com/dmitrymomot/servedir/core/dispatch"
)

// Handler adapts a dispatcher to http.Handler. It translates the parsed
// request head into a dispatch.Request, writes the description's headers in
// their declared order, and lets net/http handle keep-alive, pipelining and
// HEAD body suppression on the wire.
//
// Percent-decoding happens here: the dispatcher treats its URI byte-literally,
// so it is handed the decoded path. Filenames that needed encoding in a
// listing href resolve back to their on-disk names.
func Handler(d *dispatch.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd := d.Dispatch(dispatch.Request{
			Method: dispatch.Method(r.Method),
			URI:    r.URL.Path,
			Header: flattenHeader(r.Header),
		})

		hdr := w.Header()
		for _, h := range rd.Headers {
			hdr.Add(h.Name, h.Value)
		}

		w.WriteHeader(rd.StatusCode)
		if len(rd.Body) > 0 {
			_, _ = w.Write(rd.Body)
		}
	})
}

// flattenHeader keeps only the first value per header. The dispatcher treats
// headers as opaque, so nothing downstream needs the multi-value form.
func flattenHeader(h http.Header) map[string]string {
	flat := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) > 0 {
			flat[name] = values[0]
		}
	}
	return flat
}
