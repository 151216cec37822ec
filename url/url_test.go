package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testcases := []struct {
		desc string
		raw  string
		url  URL
	}{
		{
			desc: "https with path",
			raw:  "https://example.org/index.html",
			url: URL{
				Scheme:   SchemeHTTPS,
				Hostname: "example.org",
				Port:     443,
				Path:     "/index.html",
			},
		},
		{
			desc: "http with nested path",
			raw:  "http://www.example.org/example/index.html",
			url: URL{
				Scheme:   SchemeHTTP,
				Hostname: "www.example.org",
				Port:     80,
				Path:     "/example/index.html",
			},
		},
		{
			desc: "scheme is case-insensitive",
			raw:  "HTTPS://www.example.org/",
			url: URL{
				Scheme:   SchemeHTTPS,
				Hostname: "www.example.org",
				Port:     443,
				Path:     "/",
			},
		},
		{
			desc: "empty path normalizes to /",
			raw:  "HTTPS://www.example.org",
			url: URL{
				Scheme:   SchemeHTTPS,
				Hostname: "www.example.org",
				Port:     443,
				Path:     "/",
			},
		},
		{
			desc: "explicit port",
			raw:  "http://localhost:8000/index.html",
			url: URL{
				Scheme:   SchemeHTTP,
				Hostname: "localhost",
				Port:     8000,
				Path:     "/index.html",
			},
		},
		{
			desc: "bare host:port has no scheme",
			raw:  "www.example.org:8080",
			url: URL{
				Scheme:   SchemeHTTPS,
				Hostname: "www.example.org",
				Port:     8080,
				Path:     "/",
			},
		},
		{
			desc: "schemeless host",
			raw:  "example.org",
			url: URL{
				Scheme:   SchemeHTTPS,
				Hostname: "example.org",
				Port:     443,
				Path:     "/",
			},
		},
		{
			desc: "host casing is preserved",
			raw:  "http://ExAmPlE.org/A/B",
			url: URL{
				Scheme:   SchemeHTTP,
				Hostname: "ExAmPlE.org",
				Port:     80,
				Path:     "/A/B",
			},
		},
		{
			desc: "file scheme is opaque",
			raw:  "file:///tmp/index.html",
			url: URL{
				Scheme: SchemeFile,
				Opaque: "///tmp/index.html",
				Path:   "/",
			},
		},
		{
			desc: "data scheme is opaque",
			raw:  "data:text/html,Hello",
			url: URL{
				Scheme: SchemeData,
				Opaque: "text/html,Hello",
				Path:   "/",
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			u, err := Resolve(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.url, u)
		})
	}
}

func TestResolveBadPort(t *testing.T) {
	for _, raw := range []string{
		"http://example.org:notaport/",
		"http://example.org:70000/",
		"http://example.org:-1/",
	} {
		_, err := Resolve(raw)
		require.ErrorIs(t, err, ErrBadPort, "input: %s", raw)
	}
}

func TestHost(t *testing.T) {
	u, err := Resolve("http://example.org:8080/x")
	require.NoError(t, err)
	assert.Equal(t, "example.org:8080", u.Host())

	u, err = Resolve("https://example.org")
	require.NoError(t, err)
	assert.Equal(t, "example.org:443", u.Host())
}

func TestDefaultPort(t *testing.T) {
	assert.EqualValues(t, 443, DefaultPort(SchemeHTTPS))
	assert.EqualValues(t, 80, DefaultPort(SchemeHTTP))
	assert.EqualValues(t, 80, DefaultPort(SchemeFile))
}
