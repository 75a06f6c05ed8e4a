// Package dispatch turns parsed HTTP request heads into response
// descriptions for the static file server. It owns the whole per-request
// pipeline: method routing, CORS policy, path validation, resource
// resolution with index-file fallback, directory listing, and MIME
// resolution. The transport layer feeds it a Request and encodes the
// resulting ResponseDescription onto the wire; the dispatcher never touches
// a socket.
//
// A Dispatcher is immutable after construction and holds no per-request
// state, so one instance serves any number of concurrent requests. Every
// error reachable from a live request becomes a well-defined HTTP status;
// none propagate out of Dispatch.
package dispatch
