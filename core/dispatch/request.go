package dispatch

// Method is an HTTP request method. Only GET, HEAD and OPTIONS are
// distinguished; every other value takes the method-not-allowed route.
type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Request is a parsed request head handed over by the transport. URI may
// still carry a query component; the dispatcher strips it. Header is opaque
// to the pipeline and carried only for logging collaborators.
type Request struct {
	Method Method
	URI    string
	Header map[string]string
}
