package fetch

import (
	"encoding/base64"
	"os"
	"strings"

	"docfetch/http"
	"docfetch/url"

	"github.com/pkg/errors"
)

// localResponse wraps bytes that never crossed a socket in the same
// Response shape the network path produces, so rendering is uniform.
func localResponse(body string) *http.Response {
	return &http.Response{
		Version:     http.Version,
		StatusCode:  200,
		Explanation: "OK",
		Headers:     http.NewHeaders(),
		Body:        body,
	}
}

func fetchFile(u url.URL) (*http.Response, error) {
	path := strings.TrimPrefix(u.Opaque, "//")

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, configErr(errors.Wrapf(err, "reading %s", path))
	}

	return localResponse(string(b)), nil
}

var ErrMalformedDataURL = errors.New("data url is missing its comma")

// fetchData handles "data:[mediatype][;base64],payload".
func fetchData(u url.URL) (*http.Response, error) {
	meta, payload, found := strings.Cut(u.Opaque, ",")
	if !found {
		return nil, configErr(ErrMalformedDataURL)
	}

	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, configErr(errors.Wrap(err, "decoding base64 payload"))
		}
		return localResponse(string(decoded)), nil
	}

	return localResponse(unescapePercent(payload)), nil
}

// unescapePercent undoes %XX escapes, leaving broken ones alone.
func unescapePercent(s string) string {
	b := new(strings.Builder)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, ok1 := fromHex(s[i+1])
			lo, ok2 := fromHex(s[i+2])
			if ok1 && ok2 {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func fromHex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
