package http

import (
	"strings"
	"testing"

	"docfetch/url"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBytes(t *testing.T) {
	u, err := url.Resolve("http://example.org/index.html")
	require.NoError(t, err)

	raw := string(NewRequest("GET", u).Bytes())

	lines := strings.Split(raw, "\r\n")
	require.GreaterOrEqual(t, len(lines), 3)

	assert.Equal(t, "GET /index.html HTTP/1.1", lines[0])

	// The message ends with a blank line and carries no body.
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\n"))

	// Match on header set membership, not on order.
	headers := make(map[string]string)
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		name, value, found := strings.Cut(line, ": ")
		require.True(t, found, "malformed header line: %q", line)
		headers[name] = value
	}

	assert.Equal(t, map[string]string{
		"Host":       "example.org",
		"Connection": "close",
		"User-Agent": DefaultUserAgent,
	}, headers)
}

func TestRequestBytesCustomUserAgent(t *testing.T) {
	u, err := url.Resolve("http://example.org")
	require.NoError(t, err)

	req := NewRequest("GET", u)
	req.UserAgent = "test-agent"

	assert.Contains(t, string(req.Bytes()), "User-Agent: test-agent\r\n")
}

func TestParseResponse(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/html\r\n" +
		"Server: demo\r\n" +
		"\r\n" +
		"<html>hello</html>"

	res, err := ParseResponse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "HTTP/1.1", res.Version)
	assert.EqualValues(t, 200, res.StatusCode)
	assert.Equal(t, "OK", res.Explanation)
	assert.Equal(t, "<html>hello</html>", res.Body)
	assert.True(t, res.OK())

	v, ok := res.Headers.Get("Content-Type")
	require.True(t, ok)
	assert.Equal(t, "text/html", v)
}

func TestParseResponseExplanationFirstWordOnly(t *testing.T) {
	res, err := ParseResponse([]byte("HTTP/1.1 404 Not Found\r\n\r\n"))
	require.NoError(t, err)
	assert.EqualValues(t, 404, res.StatusCode)
	assert.Equal(t, "Not", res.Explanation)
	assert.False(t, res.OK())
}

func TestParseResponseRejectsCodings(t *testing.T) {
	testcases := []struct {
		desc string
		raw  string
	}{
		{
			desc: "transfer-encoding",
			raw:  "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n",
		},
		{
			desc: "content-encoding",
			raw:  "HTTP/1.1 200 OK\r\nContent-Encoding: gzip\r\n\r\n",
		},
		{
			desc: "coding headers match case-insensitively",
			raw:  "HTTP/1.1 200 OK\r\nTRANSFER-ENCODING: chunked\r\n\r\n",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := ParseResponse([]byte(tc.raw))
			require.ErrorIs(t, err, ErrUnsupportedCoding)
		})
	}
}

func TestParseResponseMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"HTTP/1.1",
		"HTTP/1.1 abc OK\r\n\r\n",
		"HTTP/1.1 99999 OK\r\n\r\n",
	} {
		_, err := ParseResponse([]byte(raw))
		require.ErrorIs(t, err, ErrMalformedStatusLine, "input: %q", raw)
	}
}

func TestParseResponseDropsSeparatorlessLines(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n" +
		"this line has no separator\r\n" +
		"Server: demo\r\n" +
		"\r\n" +
		"body"

	res, err := ParseResponse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Headers.Len())
	assert.Equal(t, "body", res.Body)
}

func TestParseResponseDuplicateHeadersLastWins(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n" +
		"Server: first\r\n" +
		"SERVER: second\r\n" +
		"\r\n"

	res, err := ParseResponse([]byte(raw))
	require.NoError(t, err)

	v, ok := res.Headers.Get("server")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestParseResponseBodyRejoinedWithCRLF(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n\r\nline one\nline two"

	res, err := ParseResponse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "line one\r\nline two", res.Body)
}

func TestParseResponseLossyUTF8(t *testing.T) {
	raw := append([]byte("HTTP/1.1 200 OK\r\n\r\n"), 0xff, 'a')

	res, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "�a", res.Body)
}

func TestRoundTrip(t *testing.T) {
	u, err := url.Resolve("http://example.org/page")
	require.NoError(t, err)

	// A peer that echoes a well-formed response.
	response := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"hi"

	request := NewRequest("GET", u).Bytes()
	require.NotEmpty(t, request)

	res, err := ParseResponse([]byte(response))
	require.NoError(t, err)
	assert.EqualValues(t, 200, res.StatusCode)

	ct, ok := res.Headers.Get("content-type")
	require.True(t, ok)
	assert.Equal(t, "text/plain", ct)
	assert.Equal(t, "hi", res.Body)
}
