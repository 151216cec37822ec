// Package http implements the wire-level slice of HTTP/1.1 this client
// speaks: serializing a bodyless GET-style request and parsing a full,
// connection-delimited response buffer.
//
// It intentionally rejects responses it would otherwise have to
// decode. See [ParseResponse].
package http

import "github.com/pkg/errors"

const (
	// Version is the only protocol version requests are written as.
	Version = "HTTP/1.1"

	// DefaultUserAgent goes on every request unless overridden.
	DefaultUserAgent = "docfetch/0.1"

	crlf = "\r\n"
)

var (
	ErrMalformedStatusLine = errors.New("status line is malformed")

	// ErrUnsupportedCoding rejects responses carrying a
	// transfer-encoding or content-encoding header. This client never
	// dechunks or decompresses; it refuses instead.
	ErrUnsupportedCoding = errors.New("transfer/content coding is unsupported")
)
