package http

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Response is a fully parsed response message.
type Response struct {
	Version     string
	StatusCode  uint16
	Explanation string

	Headers Headers
	Body    string
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return 200 <= r.StatusCode && r.StatusCode < 300
}

// ParseResponse parses a complete raw response buffer, as read until
// connection close.
//
// Bytes are decoded as UTF-8 with invalid sequences replaced. The
// explanation keeps only the first word of the reason phrase. Header
// lines missing the ": " separator are dropped silently; duplicate
// names keep the last value. Everything after the first blank line is
// the body, rejoined with CRLF.
//
// Responses declaring a transfer or content coding are rejected with
// [ErrUnsupportedCoding]: this parser guarantees it never emits a body
// that still needs decoding it cannot perform.
func ParseResponse(raw []byte) (*Response, error) {
	text := strings.ToValidUTF8(string(raw), "�")

	lines := splitLines(text)

	response := &Response{Headers: NewHeaders()}

	var err error
	response.Version, response.StatusCode, response.Explanation, err = parseStatusLine(lines[0])
	if err != nil {
		return nil, errors.Wrap(err, "parsing status line")
	}

	rest := parseHeaders(lines[1:], response.Headers)

	for _, name := range []string{"transfer-encoding", "content-encoding"} {
		if v, ok := response.Headers.Get(name); ok {
			return nil, errors.Wrapf(ErrUnsupportedCoding, "%s: %s", name, v)
		}
	}

	response.Body = strings.Join(rest, crlf)

	return response, nil
}

func parseStatusLine(line string) (version string, code uint16, explanation string, err error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return "", 0, "", ErrMalformedStatusLine
	}

	version = parts[0]

	n, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return "", 0, "", errors.Wrapf(ErrMalformedStatusLine, "status code %q", parts[1])
	}

	// Multi-word reason phrases are truncated to their first word.
	if len(parts) > 2 {
		explanation = parts[2]
	}

	return version, uint16(n), explanation, nil
}

// parseHeaders consumes header lines up to the first empty line and
// returns the remaining body lines.
func parseHeaders(lines []string, headers Headers) (rest []string) {
	for idx, line := range lines {
		if line == "" {
			return lines[idx+1:]
		}

		name, value, found := strings.Cut(line, ": ")
		if !found {
			// Not a field line. Drop it rather than fail the message.
			continue
		}

		headers.Set(name, strings.TrimSpace(value))
	}

	return nil
}

// splitLines splits on LF, tolerating either CRLF or sole-LF input.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for idx, line := range lines {
		lines[idx] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
