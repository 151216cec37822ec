package http

import (
	"strings"

	"docfetch/url"
)

// Request is a transient request description. It borrows the URL and
// lives only until [Request.Bytes] has produced the wire form.
type Request struct {
	Method    string
	URL       url.URL
	UserAgent string
}

func NewRequest(method string, u url.URL) Request {
	return Request{Method: method, URL: u, UserAgent: DefaultUserAgent}
}

type field struct{ name, value string }

// Bytes serializes the request: request line, a fixed header set in
// insertion order, then a blank line. No body is ever written.
func (r Request) Bytes() []byte {
	ua := r.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	fields := []field{
		{"Host", r.URL.Hostname},
		{"Connection", "close"},
		{"User-Agent", ua},
	}

	b := new(strings.Builder)
	b.WriteString(r.Method)
	b.WriteByte(' ')
	b.WriteString(r.URL.Path)
	b.WriteByte(' ')
	b.WriteString(Version)
	b.WriteString(crlf)

	for _, f := range fields {
		b.WriteString(f.name)
		b.WriteString(": ")
		b.WriteString(f.value)
		b.WriteString(crlf)
	}
	b.WriteString(crlf)

	return []byte(b.String())
}
