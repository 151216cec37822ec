// Package url resolves the small slice of URL syntax a document fetcher
// needs: scheme, host, port and path. It is deliberately more forgiving
// than RFC 3986; see [Resolve].
package url

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Scheme string

const (
	SchemeHTTPS Scheme = "https"
	SchemeHTTP  Scheme = "http"
	SchemeFile  Scheme = "file"
	SchemeData  Scheme = "data"
)

// schemeOf maps a lowercased scheme token to a known scheme.
// An empty token means the input had no scheme at all.
func schemeOf(token string) (Scheme, bool) {
	switch token {
	case "", "https":
		return SchemeHTTPS, true
	case "http":
		return SchemeHTTP, true
	case "file":
		return SchemeFile, true
	case "data":
		return SchemeData, true
	}
	return "", false
}

// DefaultPort returns the port implied by scheme when the authority
// carries none.
func DefaultPort(scheme Scheme) uint16 {
	if scheme == SchemeHTTPS {
		return 443
	}
	return 80
}

// URL is an immutable resolved URL. Construct it with [Resolve].
type URL struct {
	Scheme   Scheme
	Hostname string // case preserved as given
	Port     uint16
	Path     string // always starts with "/"

	// Opaque holds the remainder of non-network schemes (file, data),
	// untouched. Empty for http(s).
	Opaque string
}

// Host is the dial target, "hostname:port".
func (u URL) Host() string {
	return u.Hostname + ":" + strconv.FormatUint(uint64(u.Port), 10)
}

func (u URL) String() string {
	if u.Scheme == SchemeFile || u.Scheme == SchemeData {
		return string(u.Scheme) + ":" + u.Opaque
	}
	return string(u.Scheme) + "://" + u.Hostname + u.Path
}

var ErrBadPort = errors.New("port is not a valid uint16")

// Resolve parses raw into a URL.
//
// The scheme is whatever precedes the first ':', matched
// case-insensitively. A token that is not a known scheme is treated as
// not being a scheme at all: the whole input (colon included) is
// reparsed as a schemeless remainder with scheme defaulting to https.
// That keeps bare "host:port" inputs working.
//
// A malformed port is the caller's mistake, so it is an error rather
// than something to paper over.
func Resolve(raw string) (URL, error) {
	token, rest, found := strings.Cut(raw, ":")

	scheme, known := schemeOf(strings.ToLower(token))
	if !found || !known {
		// No colon, or a colon that isn't a scheme delimiter.
		scheme, rest = SchemeHTTPS, raw
	}

	if scheme == SchemeFile || scheme == SchemeData {
		return URL{Scheme: scheme, Opaque: rest, Path: "/"}, nil
	}

	rest = strings.TrimLeft(rest, "/")

	host, path, found := strings.Cut(rest, "/")
	if !found {
		path = ""
	}
	path = "/" + path

	hostname, port, err := splitHostPort(host, scheme)
	if err != nil {
		return URL{}, errors.Wrapf(err, "splitting host %q", host)
	}

	return URL{
		Scheme:   scheme,
		Hostname: hostname,
		Port:     port,
		Path:     path,
	}, nil
}

func splitHostPort(host string, scheme Scheme) (hostname string, port uint16, err error) {
	idx := strings.LastIndexByte(host, ':')
	if idx < 0 {
		return host, DefaultPort(scheme), nil
	}

	hostname, rawPort := host[:idx], host[idx+1:]

	n, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return "", 0, errors.Wrapf(ErrBadPort, "parsing %q", rawPort)
	}

	return hostname, uint16(n), nil
}
