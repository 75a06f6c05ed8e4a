package dispatch

// Header is a single response header. ResponseDescription keeps headers as
// an ordered slice rather than a map: Content-Type and Content-Length come
// before the CORS set, and the transport writes them in that order.
type Header struct {
	Name  string
	Value string
}

// ResponseDescription is the dispatcher's output: everything the transport
// needs to encode a response. Body is nil for HEAD and OPTIONS responses even
// when Content-Length is set.
type ResponseDescription struct {
	StatusCode int
	Headers    []Header
	Body       []byte
}

// HeaderValue returns the first header with the given name.
func (rd ResponseDescription) HeaderValue(name string) (string, bool) {
	for _, h := range rd.Headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}
