package dispatch

// The server answers cross-origin requests unconditionally and permissively;
// it serves local development, not production traffic. The same header set
// rides on every response, error responses included.
var corsHeaders = []Header{
	{Name: "Access-Control-Allow-Origin", Value: "*"},
	{Name: "Access-Control-Allow-Methods", Value: "GET, HEAD, OPTIONS"},
	{Name: "Access-Control-Allow-Headers", Value: "*"},
	{Name: "Access-Control-Max-Age", Value: "86400"},
}
